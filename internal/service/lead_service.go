package service

import (
	"context"
	"errors"
	"fmt"

	"iejimai_com/internal/config"
	"iejimai_com/internal/middleware"
	"iejimai_com/internal/model"
	"iejimai_com/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadService interface {
	// CreateFromContactForm は公開フォームの問い合わせをリードとして登録し、管理者へ通知します
	CreateFromContactForm(ctx context.Context, req *model.ContactRequest) (*model.Lead, error)
	ListLeads(ctx context.Context) ([]*model.Lead, error)
	GetLead(ctx context.Context, leadID uuid.UUID) (*model.Lead, error)
	UpdateLead(ctx context.Context, leadID uuid.UUID, req *model.UpdateLeadRequest) (*model.Lead, error)
}

type leadService struct {
	db       *gorm.DB
	leadRepo repository.LeadRepository
	mailer   Mailer
	cfg      *config.Config
}

func NewLeadService(db *gorm.DB, leadRepo repository.LeadRepository, mailer Mailer, cfg *config.Config) LeadService {
	return &leadService{db: db, leadRepo: leadRepo, mailer: mailer, cfg: cfg}
}

func (s *leadService) CreateFromContactForm(ctx context.Context, req *model.ContactRequest) (*model.Lead, error) {
	logger := middleware.GetLogger(ctx)

	// 電話とメールは連絡先テキストにまとめて保持する（原文フォーマット固定）
	email := req.Email
	if email == "" {
		email = "なし"
	}
	contactInfo := fmt.Sprintf("電話: %s\nメール: %s", req.Phone, email)

	var adminMemo *string
	if req.Notes != "" {
		memo := "【ユーザー相談内容】\n" + req.Notes
		adminMemo = &memo
	}

	// ペイロードの status / source は無視して固定値にする
	lead := &model.Lead{
		LeadID:       uuid.New(),
		Source:       "web_form",
		UserName:     &req.UserName,
		ContactInfo:  &contactInfo,
		Prefecture:   &req.Prefecture,
		City:         &req.City,
		PropertyType: &req.PropertyType,
		Status:       model.LeadStatusNew,
		AdminMemo:    adminMemo,
	}

	if err := s.leadRepo.Create(ctx, s.db, lead); err != nil {
		logger.Error("Failed to create lead", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "お問い合わせの登録に失敗しました。", "", err)
	}

	// 通知メールはベストエフォート。失敗してもリード登録は成功として返す
	if s.cfg.Mailer.AdminEmail != "" {
		subject := "【家じまい.com】新しい査定依頼が届きました"
		body := fmt.Sprintf(
			"新しい査定依頼が届きました。\n\nお名前: %s\n連絡先:\n%s\n所在地: %s %s\n物件種別: %s\n受付ID: %s\n",
			req.UserName, contactInfo, req.Prefecture, req.City, req.PropertyType, lead.LeadID.String(),
		)
		if err := s.mailer.Send(ctx, s.cfg.Mailer.AdminEmail, subject, body); err != nil {
			logger.Error("Failed to send new lead notification mail", "error", err, "lead_id", lead.LeadID.String())
		}
	}

	return lead, nil
}

func (s *leadService) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	logger := middleware.GetLogger(ctx)
	leads, err := s.leadRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list leads", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問い合わせ一覧の取得に失敗しました。", "", err)
	}
	if leads == nil {
		leads = []*model.Lead{}
	}
	return leads, nil
}

func (s *leadService) GetLead(ctx context.Context, leadID uuid.UUID) (*model.Lead, error) {
	return s.leadRepo.FindByID(ctx, s.db, leadID)
}

// UpdateLead が書き換えるのは status と admin_memo の2列だけです
func (s *leadService) UpdateLead(ctx context.Context, leadID uuid.UUID, req *model.UpdateLeadRequest) (*model.Lead, error) {
	logger := middleware.GetLogger(ctx)

	status := model.LeadStatus(req.Status)
	if !status.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "ステータスの値が不正です。", "status", model.ErrInvalidInput)
	}

	if err := s.leadRepo.UpdateStatusAndMemo(ctx, s.db, leadID, status, req.AdminMemo); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to update lead", "error", err, "lead_id", leadID.String())
		return nil, model.ErrInternalServer
	}

	lead, err := s.leadRepo.FindByID(ctx, s.db, leadID)
	if err != nil {
		logger.Error("Failed to reload lead after update", "error", err, "lead_id", leadID.String())
		return nil, err
	}
	return lead, nil
}
