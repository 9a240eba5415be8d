package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voqa-labs/voqa-cli/internal/core/domain"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driven"
	"github.com/voqa-labs/voqa-cli/internal/core/ports/driving"
	"github.com/voqa-labs/voqa-cli/internal/logger"
	"github.com/voqa-labs/voqa-cli/internal/windower"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// emptyGenerationAnswer is shown when the generative model returns nothing.
const emptyGenerationAnswer = "The model could not generate an answer."

// AnswerService answers questions against documents using either the
// extractive windowed search or a single generative call, selected by the
// language configuration. Engines are injected once per selected language;
// the service holds no model-loading or caching state.
type AnswerService struct {
	cfg       domain.LanguageConfig
	scorer    driven.WindowScorer
	generator driven.AnswerGenerator
	windows   *windower.Windower
	queries   driven.QueryStore
	voice     driving.VoiceService
}

// NewAnswerService creates an answer service for one language
// configuration. scorer is required for extractive mode, generator for
// generative mode; the unused one may be nil. queries is optional; when
// nil, answered queries are not persisted.
func NewAnswerService(
	cfg domain.LanguageConfig,
	scorer driven.WindowScorer,
	generator driven.AnswerGenerator,
	w *windower.Windower,
	queries driven.QueryStore,
) *AnswerService {
	if w == nil {
		w = windower.New()
	}

	return &AnswerService{
		cfg:       cfg,
		scorer:    scorer,
		generator: generator,
		windows:   w,
		queries:   queries,
	}
}

// SetVoiceService sets the voice service used to synthesize spoken answers.
func (s *AnswerService) SetVoiceService(voice driving.VoiceService) {
	s.voice = voice
}

// Ask answers a question against the document and returns the query record.
func (s *AnswerService) Ask(
	ctx context.Context, question string, doc *domain.Document, opts driving.AskOptions,
) (*domain.QueryRecord, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	var result domain.AnswerResult
	var err error

	switch s.cfg.Mode {
	case domain.QAModeGenerative:
		result, err = s.generate(ctx, question, doc)
		if err != nil {
			return nil, err
		}
	default:
		if s.scorer == nil {
			return nil, domain.ErrScorerUnavailable
		}
		text := ""
		if !doc.IsEmpty() {
			text = doc.Text
		}
		result = s.FindAnswer(ctx, question, text)
	}

	rec := &domain.QueryRecord{
		ID:       uuid.New().String(),
		Language: s.cfg.Name,
		Question: question,
		Spoken:   opts.Spoken,
		Result:   result,
	}
	if doc != nil {
		rec.DocumentID = doc.ID
	}
	rec.CreatedAt = time.Now().UTC()

	// Synthesis failure never invalidates the textual answer.
	if opts.Speak && s.voice != nil && !result.IsSentinel() {
		audioPath, speakErr := s.voice.Speak(ctx, result.Answer, s.cfg.Name)
		if speakErr != nil {
			logger.Warn("speak answer: %v", speakErr)
		} else {
			rec.AudioPath = audioPath
		}
	}

	if s.queries != nil && (opts.Record == nil || *opts.Record) {
		if saveErr := s.queries.SaveQuery(ctx, rec); saveErr != nil {
			logger.Warn("save query: %v", saveErr)
		}
	}

	return rec, nil
}

// generate runs the generative path: one model invocation with the full
// document as context, confidence fixed at 1.0.
func (s *AnswerService) generate(
	ctx context.Context, question string, doc *domain.Document,
) (domain.AnswerResult, error) {
	if s.generator == nil {
		return domain.AnswerResult{}, domain.ErrGeneratorUnavailable
	}
	if doc.IsEmpty() {
		return domain.EmptyDocumentResult(), nil
	}

	answer, err := s.generator.Generate(ctx, question, doc.Text)
	if err != nil {
		return domain.AnswerResult{}, fmt.Errorf("generate answer: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = emptyGenerationAnswer
	}
	return domain.GeneratedResult(answer), nil
}

// FindAnswer runs the extractive windowed search with the service's
// scorer and window configuration.
func (s *AnswerService) FindAnswer(ctx context.Context, question, documentText string) domain.AnswerResult {
	return ExtractAnswer(ctx, question, documentText, s.scorer, s.windows)
}

// ExtractAnswer searches documentText for the best answer to question.
//
// The text is split into overlapping windows and each window is scored in
// order. A failed scoring call skips only that window. Candidates with an
// empty answer are discarded; each kept candidate is annotated with the
// window text it came from, since the scorer's output does not carry it.
// The candidate with the highest confidence wins, ties going to the
// earliest window and earliest candidate within it. When nothing remains
// a sentinel result is returned; no scorer failure ever escapes.
func ExtractAnswer(
	ctx context.Context,
	question, documentText string,
	scorer driven.WindowScorer,
	w *windower.Windower,
) domain.AnswerResult {
	if documentText == "" {
		return domain.EmptyDocumentResult()
	}
	if w == nil {
		w = windower.New()
	}

	windows := w.Split(documentText)
	if len(windows) == 0 {
		return domain.NoWindowsResult()
	}

	logger.Section("Answer Extraction")
	logger.Debug("Question: %q", question)
	logger.Debug("Scoring %d windows (size=%d overlap=%d)", len(windows), w.WindowSize(), w.Overlap())

	var pool []domain.Candidate
	for _, win := range windows {
		candidates, err := scorer.Score(ctx, question, win.Text)
		if err != nil {
			logger.Warn("window %d: scoring failed: %v", win.Position, err)
			continue
		}

		for _, c := range candidates {
			if c.Answer == "" {
				continue
			}
			c.Context = win.Text
			pool = append(pool, c)
		}
	}

	if len(pool) == 0 {
		logger.Debug("No usable candidates after filtering")
		return domain.NoConfidentAnswerResult()
	}

	best := pool[0]
	for _, c := range pool[1:] {
		// Strict comparison keeps the first-encountered candidate on ties.
		if c.Score > best.Score {
			best = c
		}
	}

	logger.Debug("Best candidate score: %.4f (pool=%d)", best.Score, len(pool))
	return domain.AnswerResult{
		Answer:  best.Answer,
		Score:   best.Score,
		Context: best.Context,
	}
}
