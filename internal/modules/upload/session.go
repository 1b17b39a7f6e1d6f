package upload

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/reusedev/ghibli-detox/internal/consts"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/request"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/response"
	"github.com/reusedev/ghibli-detox/tools"
)

// API is the server surface the session drives. HTTPClient is the real
// implementation; tests substitute their own.
type API interface {
	Analyze(ctx context.Context, filename string, data []byte) (*response.PartialAnalysis, error)
	Generate(ctx context.Context, form *request.Generate) (*response.Creation, error)
	Delete(ctx context.Context, id int) error
}

var (
	ErrFileTooLarge    = errors.New("file is too large, the maximum size is 10MB")
	ErrUnsupportedType = errors.New("only JPG, PNG and WEBP images are supported")
)

const genericFailure = "Something went wrong processing your image. Please try again."

// Session runs the two request phases as one user-visible upload and
// tracks the state machine across them.
type Session struct {
	mu        sync.Mutex
	api       API
	state     State
	progress  *Progress
	analysis  *response.PartialAnalysis
	creation  *response.Creation
	createdAt time.Time
	lastError string
}

func NewSession(api API) *Session {
	return &Session{
		api:      api,
		state:    StateInitial,
		progress: NewProgress(),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Progress() *Progress {
	return s.progress
}

func (s *Session) Analysis() *response.PartialAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysis
}

func (s *Session) Result() *response.Creation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creation
}

// LastError is the sanitized message of the most recent failure, empty
// after a success or restart.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Upload validates the file locally, then runs analyze and generate in
// sequence. A failure in either phase lands the session back in the
// initial state with a presentable error.
func (s *Session) Upload(ctx context.Context, filename string, data []byte) (*response.Creation, error) {
	if err := s.accept(data); err != nil {
		return nil, err
	}

	s.progress.SetStage(StageAnalyzing)
	analysis, err := s.api.Analyze(ctx, filename, data)
	if err != nil {
		s.fail(EventAnalyzeFailed, err)
		return nil, errors.New(presentable(err))
	}
	s.mu.Lock()
	s.state, _ = Transition(s.state, EventAnalyzeSucceeded)
	s.analysis = analysis
	s.mu.Unlock()
	// the ticker rolls this into the neutralizing message while the
	// slow generate call runs
	s.progress.SetStage(StageIdentifying)

	creation, err := s.api.Generate(ctx, &request.Generate{
		OriginalImageKey:   analysis.OriginalImageKey,
		PromptForDalle:     analysis.PromptForDalle,
		DiagnosisPoints:    analysis.DiagnosisPoints,
		ContaminationLevel: analysis.ContaminationLevel,
		Description:        analysis.Description,
	})
	if err != nil {
		s.fail(EventGenerateFailed, err)
		return nil, errors.New(presentable(err))
	}
	s.mu.Lock()
	s.state, _ = Transition(s.state, EventGenerateSucceeded)
	s.creation = creation
	s.createdAt = time.Now()
	s.lastError = ""
	s.mu.Unlock()
	s.progress.SetStage(StageFinalizing)
	return creation, nil
}

func (s *Session) accept(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInitial {
		return fmt.Errorf("upload not allowed in state %s", s.state)
	}
	var reason error
	if len(data) > consts.ClientMaxUploadBytes {
		reason = ErrFileTooLarge
	} else if tools.DetectImageType(data) == tools.ImageTypeUnknown {
		reason = ErrUnsupportedType
	}
	if reason != nil {
		s.state, _ = Transition(s.state, EventFileRejected)
		s.lastError = reason.Error()
		return reason
	}
	s.state, _ = Transition(s.state, EventFileAccepted)
	s.lastError = ""
	return nil
}

func (s *Session) fail(event Event, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, _ = Transition(s.state, event)
	s.lastError = presentable(err)
}

// Deletable mirrors the server rule so the UI can hide the delete action
// once the window has passed. The server stays authoritative.
func (s *Session) Deletable(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creation != nil && now.Sub(s.createdAt) <= consts.DeleteWindow
}

// Delete removes the finished record and returns the session to the
// start.
func (s *Session) Delete(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateResults || s.creation == nil {
		s.mu.Unlock()
		return fmt.Errorf("delete not allowed in state %s", s.state)
	}
	id := s.creation.Id
	s.mu.Unlock()

	if err := s.api.Delete(ctx, id); err != nil {
		return errors.New(presentable(err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, _ = Transition(s.state, EventDelete)
	s.analysis = nil
	s.creation = nil
	s.lastError = ""
	return nil
}

// Restart discards everything and returns to the initial state. Allowed
// from any state.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateInitial
	s.analysis = nil
	s.creation = nil
	s.lastError = ""
	s.progress = NewProgress()
}

// presentable keeps server-authored category messages and swaps
// everything else for a generic line. Transport details never reach the
// user.
func presentable(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return genericFailure
}
