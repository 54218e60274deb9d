package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

const chatHistoryLimit = 20

const healthChatPreamble = "You are a cautious health assistant for family caregivers of elderly people. " +
	"Answer questions about nutrition, medications and daily care in plain language. " +
	"You are not a doctor: for dosing changes, new symptoms or emergencies, always advise contacting a clinician."

// AIService wraps the Gemini client for the app's assisted features:
// diet-entry commentary, caregiver health chat and report narratives.
type AIService struct {
	client *genai.Client
	model  string
	db     *gorm.DB
	log    *zap.Logger
}

func NewAIService(ctx context.Context, db *gorm.DB, logger *zap.Logger) (*AIService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &AIService{client: client, model: model, db: db, log: logger}, nil
}

func (s *AIService) generate(ctx context.Context, prompt string) (string, error) {
	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", fmt.Errorf("no response candidates or content")
}

// AnalyzeDietEntry asks the model for short caregiver-facing commentary
// on a single logged meal.
func (s *AIService) AnalyzeDietEntry(ctx context.Context, elderName string, entry models.DietEntry) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\nA caregiver logged this %s for %s:\n", healthChatPreamble, entry.Meal, elderName)
	for _, it := range entry.ItemList() {
		fmt.Fprintf(&sb, "- %s\n", it)
	}
	if entry.Notes != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", entry.Notes)
	}
	sb.WriteString("\nIn 3-4 sentences, comment on how suitable this meal is for an elderly person and suggest one improvement.")
	return s.generate(ctx, sb.String())
}

// ReportNarrative writes a short plain-language summary of a nutrition
// analysis. Best-effort: the report stands on its own without it.
func (s *AIService) ReportNarrative(ctx context.Context, elderName string, a *NutritionAnalysis) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\nSummarize this nutrition analysis for %s in 3 sentences for a family caregiver:\n", healthChatPreamble, elderName)
	fmt.Fprintf(&sb, "- overall score %.0f/100\n- %.1f meals per day on average\n- food variety %.0f%%\n- about %.1f glasses of fluid per day\n",
		a.OverallScore, a.AvgMealsPerDay, a.VarietyScore, a.AvgWaterPerDay)
	if len(a.Concerns) > 0 {
		fmt.Fprintf(&sb, "- concerns: %s\n", strings.Join(a.Concerns, "; "))
	}
	return s.generate(ctx, sb.String())
}

// StartChat opens a new health Q&A session for a caregiver.
func (s *AIService) StartChat(userID, groupID, elderID uint, title string) (*models.ChatSession, error) {
	session := &models.ChatSession{
		SessionID: uuid.NewString(),
		UserID:    userID,
		GroupID:   groupID,
		ElderID:   elderID,
		Title:     title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// SendMessage appends a caregiver message to the session, asks the model
// with the trailing conversation as context, and stores the reply.
func (s *AIService) SendMessage(ctx context.Context, sessionID string, userID uint, message string) (string, error) {
	var session models.ChatSession
	if err := s.db.Where("session_id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		return "", err
	}

	var history []models.ChatMessage
	if err := s.db.
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(chatHistoryLimit).
		Find(&history).Error; err != nil {
		return "", err
	}

	model := s.client.GenerativeModel(s.model)
	chat := model.StartChat()
	chat.History = []*genai.Content{{
		Role:  "user",
		Parts: []genai.Part{genai.Text(healthChatPreamble)},
	}}
	// history came back newest-first
	for i := len(history) - 1; i >= 0; i-- {
		chat.History = append(chat.History, &genai.Content{
			Role:  history[i].Role,
			Parts: []genai.Part{genai.Text(history[i].Content)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}
	reply := ""
	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			reply = string(txt)
		}
	}
	if reply == "" {
		return "", fmt.Errorf("no response candidates or content")
	}

	now := time.Now()
	msgs := []models.ChatMessage{
		{SessionID: sessionID, Role: "user", Content: message, CreatedAt: now},
		{SessionID: sessionID, Role: "model", Content: reply, CreatedAt: now.Add(time.Millisecond)},
	}
	if err := s.db.Create(&msgs).Error; err != nil {
		s.log.Warn("chat: saving messages failed", zap.String("sessionID", sessionID), zap.Error(err))
	}
	s.db.Model(&session).Update("updated_at", now)

	return reply, nil
}

func (s *AIService) ListSessions(userID uint) ([]models.ChatSession, error) {
	var out []models.ChatSession
	err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&out).Error
	return out, err
}

func (s *AIService) ListMessages(sessionID string, userID uint) ([]models.ChatMessage, error) {
	var session models.ChatSession
	if err := s.db.Where("session_id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		return nil, err
	}
	var out []models.ChatMessage
	err := s.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&out).Error
	return out, err
}
