package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"

	"github.com/lucasv/prepdeck/internal/logger"
	"github.com/lucasv/prepdeck/internal/models"
	"github.com/lucasv/prepdeck/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type historyRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository implementation
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) SaveQuizResult(ctx context.Context, userID string, result models.QuizResult) error {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("saving quiz result: submission_id=%s", result.SubmissionID)

	tips, err := json.Marshal(result.Tips)
	if err != nil {
		return err
	}

	// Refreshes repeat, so re-saving an existing result replaces it.
	_, err = r.db.ExecContext(ctx, `
INSERT OR REPLACE INTO quiz_results (submission_id, user_id, quiz_id, subject, score, total_questions, hints_used, tips, submitted_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, result.SubmissionID, userID, result.QuizID, result.Subject, result.Score, result.TotalQuestions, result.HintsUsed, string(tips), result.SubmittedAt)
	if err != nil {
		log.Error("failed to save quiz result: %v", err)
	}
	return err
}

func (r *historyRepository) ListQuizResults(ctx context.Context, userID string, f models.QuizHistoryFilter) ([]models.QuizResult, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("listing quiz results: user_id=%s, subject=%s, limit=%d", userID, f.Subject, f.Limit)

	query := sqlBuilder.Select(
		"submission_id", "quiz_id", "subject", "score", "total_questions", "hints_used", "tips", "submitted_at",
	).From("quiz_results").Where(squirrel.Eq{"user_id": userID}).OrderBy("submitted_at DESC")

	if f.Subject != "" {
		query = query.Where(squirrel.Eq{"subject": f.Subject})
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query quiz results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var result models.QuizResult
		var tips string
		if err := rows.Scan(&result.SubmissionID, &result.QuizID, &result.Subject, &result.Score, &result.TotalQuestions, &result.HintsUsed, &tips, &result.SubmittedAt); err != nil {
			log.Error("failed to scan quiz result row: %v", err)
			return nil, err
		}
		if err := json.Unmarshal([]byte(tips), &result.Tips); err != nil {
			log.Warn("failed to decode tips for submission %s: %v", result.SubmissionID, err)
		}
		results = append(results, result)
	}
	log.Debug("found %d cached quiz results", len(results))
	return results, rows.Err()
}

func (r *historyRepository) SaveInterviewFeedback(ctx context.Context, userID string, fb models.InterviewFeedback) error {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("saving interview feedback: session_id=%s", fb.SessionID)

	strengths, err := json.Marshal(fb.Strengths)
	if err != nil {
		return err
	}
	improvements, err := json.Marshal(fb.Improvements)
	if err != nil {
		return err
	}
	recommendations, err := json.Marshal(fb.Recommendations)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT OR REPLACE INTO interview_feedback (session_id, user_id, interview_type, technical_accuracy, communication, problem_solving,
    overall_score, confidence_level, summary, strengths, improvements, recommendations, duration, total_questions, feedback_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, fb.SessionID, userID, string(fb.Type), fb.TechnicalAccuracy, fb.Communication, fb.ProblemSolving,
		fb.OverallScore, fb.ConfidenceLevel, fb.Summary, string(strengths), string(improvements), string(recommendations),
		fb.Duration, fb.TotalQuestions, fb.CreatedAt)
	if err != nil {
		log.Error("failed to save interview feedback: %v", err)
	}
	return err
}

func (r *historyRepository) ListInterviewFeedback(ctx context.Context, userID string, f models.InterviewHistoryFilter) ([]models.InterviewFeedback, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("listing interview feedback: user_id=%s, type=%s, limit=%d", userID, f.Type, f.Limit)

	query := sqlBuilder.Select(
		"session_id", "interview_type", "technical_accuracy", "communication", "problem_solving",
		"overall_score", "confidence_level", "summary", "strengths", "improvements", "recommendations",
		"duration", "total_questions", "feedback_at",
	).From("interview_feedback").Where(squirrel.Eq{"user_id": userID}).OrderBy("feedback_at DESC")

	if f.Type != "" {
		query = query.Where(squirrel.Eq{"interview_type": string(f.Type)})
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query interview feedback: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.InterviewFeedback
	for rows.Next() {
		var fb models.InterviewFeedback
		var interviewType, strengths, improvements, recommendations string
		if err := rows.Scan(&fb.SessionID, &interviewType, &fb.TechnicalAccuracy, &fb.Communication, &fb.ProblemSolving,
			&fb.OverallScore, &fb.ConfidenceLevel, &fb.Summary, &strengths, &improvements, &recommendations,
			&fb.Duration, &fb.TotalQuestions, &fb.CreatedAt); err != nil {
			log.Error("failed to scan interview feedback row: %v", err)
			return nil, err
		}
		fb.Type = models.InterviewType(interviewType)
		if err := json.Unmarshal([]byte(strengths), &fb.Strengths); err != nil {
			log.Warn("failed to decode strengths for session %s: %v", fb.SessionID, err)
		}
		if err := json.Unmarshal([]byte(improvements), &fb.Improvements); err != nil {
			log.Warn("failed to decode improvements for session %s: %v", fb.SessionID, err)
		}
		if err := json.Unmarshal([]byte(recommendations), &fb.Recommendations); err != nil {
			log.Warn("failed to decode recommendations for session %s: %v", fb.SessionID, err)
		}
		results = append(results, fb)
	}
	log.Debug("found %d cached feedback reports", len(results))
	return results, rows.Err()
}
