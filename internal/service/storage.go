package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"iejimai_com/internal/config"
	"iejimai_com/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageStorage は業者ロゴ等の画像を保存し、公開URLを返すインターフェースです
type ImageStorage interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// imageObjectKey はアップロード時刻からオブジェクトキーを導出します。
// 元ファイル名は拡張子だけ引き継ぐ
func imageObjectKey(filename string, now time.Time) string {
	return fmt.Sprintf("vendors/%d%s", now.UnixNano(), path.Ext(filename))
}

// --- LogImageStorage ---
// 開発環境用。保存せずログに出してダミーURLを返す
type LogImageStorage struct{}

func (s *LogImageStorage) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	logger := middleware.GetLogger(ctx)
	n, err := io.Copy(io.Discard, body)
	if err != nil {
		return "", err
	}
	key := imageObjectKey(filename, time.Now())
	logger.Info("--- Uploading image (LogImageStorage) ---",
		"filename", filename,
		"content_type", contentType,
		"bytes", n,
		"key", key,
	)
	return "https://storage.invalid/" + key, nil
}

// --- S3ImageStorage ---
type S3ImageStorage struct {
	client *s3.Client
	cfg    *config.StorageConfig
}

// NewS3ImageStorage はSESメーラーと同じ流儀でクライアントを生成します
func NewS3ImageStorage(cfg *config.Config) ImageStorage {
	var awsCfgOpts []func(*awsconfig.LoadOptions) error
	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.Storage.Region))

	switch cfg.Storage.AuthType {
	case "static_credentials":
		slog.Info("Configuring S3 storage with static credentials.")
		if cfg.Storage.AccessKeyID == "" || cfg.Storage.SecretAccessKey == "" {
			slog.Error("Storage auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			panic("missing static credentials for S3 storage")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKeyID,
			cfg.Storage.SecretAccessKey,
			"",
		)
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))

	case "iam_role":
		slog.Info("Configuring S3 storage with IAM Role credentials.")

	default:
		slog.Warn("Unknown storage auth_type specified, defaulting to IAM Role.", "type", cfg.Storage.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for S3 storage", "error", err)
		panic(err)
	}

	return &S3ImageStorage{
		client: s3.NewFromConfig(awsCfg),
		cfg:    &cfg.Storage,
	}
}

// Upload は画像バケットへ保存し、公開URLを返します
func (s *S3ImageStorage) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	logger := middleware.GetLogger(ctx)
	key := imageObjectKey(filename, time.Now())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Failed to upload image to S3", "error", err, "key", key)
		return "", err
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	logger.Info("Image uploaded", "key", key, "url", url)
	return url, nil
}

// NewImageStorage は設定に応じた実装を返すファクトリ関数です
func NewImageStorage(cfg *config.Config) ImageStorage {
	logger := slog.Default()
	switch cfg.Storage.Type {
	case "s3":
		logger.Info("Initializing S3 image storage...")
		return NewS3ImageStorage(cfg)
	case "log":
		logger.Info("Initializing Log image storage...")
		return &LogImageStorage{}
	default:
		logger.Warn("Unknown storage type, defaulting to LogImageStorage", "type", cfg.Storage.Type)
		return &LogImageStorage{}
	}
}
