// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "iejimai-backend"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultAuthEnabled = false
)

// 画像アップロードの上限サイズ（500KB）。フロント側でも事前チェックされるが
// サーバー側でも強制する
const MaxUploadBytes = 500 * 1024
