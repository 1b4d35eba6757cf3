package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lucasv/prepdeck/internal/models"
	"github.com/lucasv/prepdeck/internal/repository"
	"github.com/lucasv/prepdeck/internal/repository/sqlite"
	"github.com/lucasv/prepdeck/internal/testutil"
)

type HistoryRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.HistoryRepository
}

func (s *HistoryRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewHistoryRepository(s.db)
}

func (s *HistoryRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *HistoryRepositorySuite) quizResult(submissionID, subject string, submittedAt time.Time) models.QuizResult {
	return models.QuizResult{
		QuizID:         "quiz-1",
		SubmissionID:   submissionID,
		Subject:        subject,
		Score:          7,
		TotalQuestions: 10,
		HintsUsed:      2,
		Tips:           []string{"review pointers", "practice slices"},
		SubmittedAt:    submittedAt,
	}
}

func (s *HistoryRepositorySuite) TestSaveAndListQuizResults() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	s.Require().NoError(s.repo.SaveQuizResult(ctx, "u1", s.quizResult("s1", "Go", base)))
	s.Require().NoError(s.repo.SaveQuizResult(ctx, "u1", s.quizResult("s2", "SQL", base.Add(time.Hour))))
	s.Require().NoError(s.repo.SaveQuizResult(ctx, "other", s.quizResult("s3", "Go", base)))

	results, err := s.repo.ListQuizResults(ctx, "u1", models.QuizHistoryFilter{})
	s.Require().NoError(err)
	s.Require().Len(results, 2)

	// Newest first.
	s.Assert().Equal("s2", results[0].SubmissionID)
	s.Assert().Equal("s1", results[1].SubmissionID)
	s.Assert().Equal([]string{"review pointers", "practice slices"}, results[1].Tips)
}

func (s *HistoryRepositorySuite) TestListQuizResults_SubjectAndLimit() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	s.Require().NoError(s.repo.SaveQuizResult(ctx, "u1", s.quizResult("s1", "Go", base)))
	s.Require().NoError(s.repo.SaveQuizResult(ctx, "u1", s.quizResult("s2", "Go", base.Add(time.Hour))))
	s.Require().NoError(s.repo.SaveQuizResult(ctx, "u1", s.quizResult("s3", "SQL", base.Add(2*time.Hour))))

	results, err := s.repo.ListQuizResults(ctx, "u1", models.QuizHistoryFilter{Subject: "Go", Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Assert().Equal("s2", results[0].SubmissionID)
}

func (s *HistoryRepositorySuite) TestSaveQuizResult_ReplacesOnRefresh() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	first := s.quizResult("s1", "Go", base)
	s.Require().NoError(s.repo.SaveQuizResult(ctx, "u1", first))

	updated := first
	updated.Score = 9
	s.Require().NoError(s.repo.SaveQuizResult(ctx, "u1", updated))

	results, err := s.repo.ListQuizResults(ctx, "u1", models.QuizHistoryFilter{})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Assert().Equal(9, results[0].Score)
}

func (s *HistoryRepositorySuite) TestSaveAndListInterviewFeedback() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	fb := models.InterviewFeedback{
		SessionID:         "sess-1",
		Type:              models.InterviewTechnical,
		TechnicalAccuracy: 8.0,
		Communication:     7.5,
		ProblemSolving:    8.2,
		OverallScore:      7.9,
		ConfidenceLevel:   0.8,
		Summary:           "Solid fundamentals.",
		Strengths:         []string{"clear explanations"},
		Improvements:      []string{"edge cases"},
		Recommendations:   []string{"practice system design"},
		Duration:          1800,
		TotalQuestions:    6,
		CreatedAt:         base,
	}
	s.Require().NoError(s.repo.SaveInterviewFeedback(ctx, "u1", fb))

	nonTech := fb
	nonTech.SessionID = "sess-2"
	nonTech.Type = models.InterviewNonTechnical
	nonTech.CreatedAt = base.Add(time.Hour)
	s.Require().NoError(s.repo.SaveInterviewFeedback(ctx, "u1", nonTech))

	all, err := s.repo.ListInterviewFeedback(ctx, "u1", models.InterviewHistoryFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Assert().Equal("sess-2", all[0].SessionID)

	technical, err := s.repo.ListInterviewFeedback(ctx, "u1", models.InterviewHistoryFilter{Type: models.InterviewTechnical})
	s.Require().NoError(err)
	s.Require().Len(technical, 1)
	s.Assert().Equal("sess-1", technical[0].SessionID)
	s.Assert().Equal([]string{"clear explanations"}, technical[0].Strengths)
	s.Assert().InDelta(7.9, technical[0].OverallScore, 0.001)
}

func (s *HistoryRepositorySuite) TestListEmpty() {
	ctx := context.Background()

	quizzes, err := s.repo.ListQuizResults(ctx, "nobody", models.QuizHistoryFilter{})
	s.Require().NoError(err)
	s.Assert().Empty(quizzes)

	feedback, err := s.repo.ListInterviewFeedback(ctx, "nobody", models.InterviewHistoryFilter{})
	s.Require().NoError(err)
	s.Assert().Empty(feedback)
}

func TestHistoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(HistoryRepositorySuite))
}
