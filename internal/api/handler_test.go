package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	mock_api "github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/api/mock"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func testToken(t *testing.T, secret string, userID int64) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestRouter(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_api.MockQuizSI, *mock_api.MockFolderSI, *mock_api.MockUserSI)) http.Handler {
	t.Helper()

	quiz := mock_api.NewMockQuizSI(ctrl)
	folders := mock_api.NewMockFolderSI(ctrl)
	users := mock_api.NewMockUserSI(ctrl)
	if setupMock != nil {
		setupMock(quiz, folders, users)
	}

	h := NewHandler(quiz, folders, users, NewAuth(testSecret), zap.NewNop())
	return h.Router(5 * time.Second)
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "valid token",
			token:      testToken(t, testSecret, 1),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			token:      "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			token:      "not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			token:      testToken(t, "other-secret", 1),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl, func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				if tt.wantStatus == http.StatusOK {
					quiz.EXPECT().History(gomock.Any(), int64(1), 0).Return(nil, nil)
				}
			})

			rec := doRequest(t, router, http.MethodGet, "/api/quiz/history", tt.token, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_StartQuiz(t *testing.T) {
	t.Parallel()

	started := models.StartedQuiz{
		Session: models.QuizSession{
			ID:              11,
			FolderID:        7,
			QuizType:        models.QuizTypeTranslation,
			QuestionCount:   3,
			CurrentQuestion: 1,
		},
		Question: models.Question{
			VocabItemID:   1,
			Type:          models.QuizTypeTranslation,
			Text:          "What is the translation of 'cat'?",
			Word:          "cat",
			CorrectAnswer: "gato",
		},
	}

	tests := []struct {
		name       string
		path       string
		body       interface{}
		f          func(*mock_api.MockQuizSI, *mock_api.MockFolderSI, *mock_api.MockUserSI)
		wantStatus int
		check      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			path: "/api/quiz/7/start",
			body: map[string]interface{}{"quiz_type": "translation", "question_count": 3},
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Start(gomock.Any(), int64(1), int64(7), "translation", 3).Return(started, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeBody(t, rec)
				data := body["data"].(map[string]interface{})
				assert.Equal(t, float64(11), data["quiz_id"])
				question := data["question"].(map[string]interface{})
				assert.Equal(t, "cat", question["word"])
				// correct answer never reaches the client
				assert.NotContains(t, rec.Body.String(), "gato")
			},
		},
		{
			name: "empty body falls back to defaults",
			path: "/api/quiz/7/start",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Start(gomock.Any(), int64(1), int64(7), models.QuizTypeMixed, 10).Return(started, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid folder id",
			path:       "/api/quiz/abc/start",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty folder",
			path: "/api/quiz/7/start",
			body: map[string]interface{}{"quiz_type": "mixed", "question_count": 5},
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Start(gomock.Any(), int64(1), int64(7), "mixed", 5).Return(models.StartedQuiz{}, service.ErrEmptyFolder)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "folder not accessible",
			path: "/api/quiz/7/start",
			body: map[string]interface{}{"quiz_type": "mixed", "question_count": 5},
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Start(gomock.Any(), int64(1), int64(7), "mixed", 5).Return(models.StartedQuiz{}, service.ErrNotAuthorized)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "folder not found",
			path: "/api/quiz/404/start",
			body: map[string]interface{}{"quiz_type": "mixed", "question_count": 5},
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Start(gomock.Any(), int64(1), int64(404), "mixed", 5).Return(models.StartedQuiz{}, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl, tt.f)

			rec := doRequest(t, router, http.MethodPost, tt.path, testToken(t, testSecret, 1), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestHandler_SubmitAnswer(t *testing.T) {
	t.Parallel()

	next := models.Question{
		VocabItemID: 2,
		Type:        models.QuizTypeTranslation,
		Text:        "What is the translation of 'dog'?",
		Word:        "dog",
	}
	score := 66.7

	tests := []struct {
		name       string
		f          func(*mock_api.MockQuizSI, *mock_api.MockFolderSI, *mock_api.MockUserSI)
		wantStatus int
		check      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "mid-quiz answer returns next question",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().SubmitAnswer(gomock.Any(), int64(1), int64(11), "gato").Return(models.SubmitResult{
					IsCorrect:       true,
					CorrectAnswer:   "gato",
					CurrentQuestion: 2,
					TotalQuestions:  3,
					NextQuestion:    &next,
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeBody(t, rec)
				data := body["data"].(map[string]interface{})
				assert.Equal(t, true, data["is_correct"])
				assert.Equal(t, false, data["quiz_completed"])
				require.NotNil(t, data["next_question"])
			},
		},
		{
			name: "final answer returns score",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().SubmitAnswer(gomock.Any(), int64(1), int64(11), "gato").Return(models.SubmitResult{
					IsCorrect:       false,
					CorrectAnswer:   "perro",
					Completed:       true,
					CurrentQuestion: 3,
					TotalQuestions:  3,
					FinalScore:      &score,
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeBody(t, rec)
				data := body["data"].(map[string]interface{})
				assert.Equal(t, true, data["quiz_completed"])
				assert.InDelta(t, 66.7, data["final_score"].(float64), 0.0001)
				_, hasNext := data["next_question"]
				assert.False(t, hasNext)
			},
		},
		{
			name: "empty answer",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().SubmitAnswer(gomock.Any(), int64(1), int64(11), "gato").Return(models.SubmitResult{}, service.ErrEmptyAnswer)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "session not active",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().SubmitAnswer(gomock.Any(), int64(1), int64(11), "gato").Return(models.SubmitResult{}, service.ErrNotActive)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "session not found",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().SubmitAnswer(gomock.Any(), int64(1), int64(11), "gato").Return(models.SubmitResult{}, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl, tt.f)

			rec := doRequest(t, router, http.MethodPost, "/api/quiz/11/answer", testToken(t, testSecret, 1), map[string]interface{}{"answer": "gato"})
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestHandler_FinishQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_api.MockQuizSI, *mock_api.MockFolderSI, *mock_api.MockUserSI)
		wantStatus int
	}{
		{
			name: "success",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Finish(gomock.Any(), int64(1), int64(11)).Return(models.QuizSummary{
					QuizID:         11,
					Status:         models.QuizStatusCompleted,
					FinalScore:     100.0,
					CorrectAnswers: 3,
					TotalAnswered:  3,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "abandoned quiz",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Finish(gomock.Any(), int64(1), int64(11)).Return(models.QuizSummary{}, service.ErrInvalidState)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl, tt.f)

			rec := doRequest(t, router, http.MethodPost, "/api/quiz/11/finish", testToken(t, testSecret, 1), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_AbandonQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_api.MockQuizSI, *mock_api.MockFolderSI, *mock_api.MockUserSI)
		wantStatus int
	}{
		{
			name: "success",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Abandon(gomock.Any(), int64(1), int64(11)).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already finished",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().Abandon(gomock.Any(), int64(1), int64(11)).Return(service.ErrNotActive)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl, tt.f)

			rec := doRequest(t, router, http.MethodDelete, "/api/quiz/11", testToken(t, testSecret, 1), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_QuizResults(t *testing.T) {
	t.Parallel()

	score := 50.0
	now := time.Now().UTC()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, ctrl, func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
		quiz.EXPECT().Results(gomock.Any(), int64(1), int64(11)).Return(models.QuizResults{
			Session: models.QuizSession{
				ID:             11,
				QuizType:       models.QuizTypeMixed,
				Status:         models.QuizStatusCompleted,
				Score:          &score,
				CorrectAnswers: 1,
				TotalAnswers:   2,
				StartedAt:      now,
				CompletedAt:    &now,
			},
			FolderTitle: "Spanish Basics",
			Answers: []models.QuizAnswerDetail{
				{Word: "cat", UserAnswer: "gato", IsCorrect: true},
				{Word: "dog", UserAnswer: "gato", IsCorrect: false},
			},
		}, nil)
	})

	rec := doRequest(t, router, http.MethodGet, "/api/quiz/11/results", testToken(t, testSecret, 1), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Spanish Basics", data["folder_title"])
	assert.Len(t, data["answers"].([]interface{}), 2)
}

func TestHandler_History(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		f          func(*mock_api.MockQuizSI, *mock_api.MockFolderSI, *mock_api.MockUserSI)
		wantStatus int
	}{
		{
			name: "no limit passes zero through",
			path: "/api/quiz/history",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().History(gomock.Any(), int64(1), 0).Return([]models.QuizHistoryItem{
					{QuizID: 11, FolderTitle: "Spanish Basics", Score: 66.7},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "explicit limit",
			path: "/api/quiz/history?limit=5",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().History(gomock.Any(), int64(1), 5).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed limit",
			path:       "/api/quiz/history?limit=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "explicit zero limit",
			path:       "/api/quiz/history?limit=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative limit",
			path:       "/api/quiz/history?limit=-3",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "limit out of range",
			path: "/api/quiz/history?limit=101",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				quiz.EXPECT().History(gomock.Any(), int64(1), 101).Return(nil, service.ErrInvalidArgument)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl, tt.f)

			rec := doRequest(t, router, http.MethodGet, tt.path, testToken(t, testSecret, 1), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_FolderHistory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, ctrl, func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
		quiz.EXPECT().FolderHistory(gomock.Any(), int64(1), int64(7), 0).Return([]models.QuizHistoryItem{
			{QuizID: 11, FolderID: 7, FolderTitle: "Spanish Basics", Score: 100.0},
		}, nil)
	})

	rec := doRequest(t, router, http.MethodGet, "/api/folders/7/quiz-history", testToken(t, testSecret, 1), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["quiz_history"].([]interface{}), 1)
}

func TestHandler_ListFolders(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, ctrl, func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
		folders.EXPECT().List(gomock.Any(), int64(1)).Return([]models.Folder{
			{ID: 7, Title: "Spanish Basics", OwnerID: 1},
		}, nil)
	})

	rec := doRequest(t, router, http.MethodGet, "/api/folders/", testToken(t, testSecret, 1), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["folders"].([]interface{}), 1)
}

func TestHandler_Profile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_api.MockQuizSI, *mock_api.MockFolderSI, *mock_api.MockUserSI)
		wantStatus int
		check      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				users.EXPECT().Profile(gomock.Any(), int64(1)).Return(models.User{
					ID:                1,
					Username:          "abdulazim",
					Email:             "abdulazim@example.com",
					TotalQuizzesTaken: 12,
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeBody(t, rec)
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "abdulazim", data["username"])
				assert.Equal(t, float64(12), data["total_quizzes_taken"])
			},
		},
		{
			name: "user not found",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				users.EXPECT().Profile(gomock.Any(), int64(1)).Return(models.User{}, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl, tt.f)

			rec := doRequest(t, router, http.MethodGet, "/api/profile", testToken(t, testSecret, 1), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestHandler_FolderWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_api.MockQuizSI, *mock_api.MockFolderSI, *mock_api.MockUserSI)
		wantStatus int
	}{
		{
			name: "success",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				folders.EXPECT().Words(gomock.Any(), int64(1), int64(7)).Return([]models.VocabItem{
					{ID: 1, Word: "cat", Translation: "gato"},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not accessible",
			f: func(quiz *mock_api.MockQuizSI, folders *mock_api.MockFolderSI, users *mock_api.MockUserSI) {
				folders.EXPECT().Words(gomock.Any(), int64(1), int64(7)).Return(nil, service.ErrNotAuthorized)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := newTestRouter(t, ctrl, tt.f)

			rec := doRequest(t, router, http.MethodGet, "/api/folders/7/words", testToken(t, testSecret, 1), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
