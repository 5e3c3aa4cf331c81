// Package predictions runs the encode, classify, and decode sequence for a
// single submission and records the outcome in the history log.
package predictions

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/JaimeStill/verdant/internal/encoders"
	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/internal/model"
)

// System defines the public contract for prediction operations.
type System interface {
	Handler(maxBodySize int64) *Handler

	Categories() Categories
	// Predict classifies req without touching history.
	Predict(ctx context.Context, req Request) (*Result, error)
	// Record predicts and then appends the result to history.
	// Nothing is appended when prediction fails.
	Record(ctx context.Context, req Request) (*Outcome, error)
}

type system struct {
	encoders   *encoders.Set
	classifier model.Classifier
	history    history.System
	logger     *slog.Logger
}

// New creates a prediction system over loaded artifacts and a history system.
func New(artifacts *model.Artifacts, hist history.System, logger *slog.Logger) System {
	return &system{
		encoders:   artifacts.Encoders,
		classifier: artifacts.Classifier,
		history:    hist,
		logger:     logger.With("system", "predictions"),
	}
}

func (s *system) Handler(maxBodySize int64) *Handler {
	return NewHandler(s, s.logger, maxBodySize)
}

func (s *system) Categories() Categories {
	symptoms := make([]string, 0, 4)
	for _, col := range model.Columns[3:] {
		symptoms = append(symptoms, strings.ReplaceAll(col, "_", " "))
	}

	return Categories{
		Plants:     s.encoders.Categories(encoders.FieldPlantName),
		LeafColors: encoders.LeafColors(),
		Symptoms:   symptoms,
		Diseases:   s.encoders.Categories(encoders.FieldDisease),
	}
}

func (s *system) Predict(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.PlantName) == "" {
		return nil, fmt.Errorf("%w: plant name required", ErrInvalidRequest)
	}

	if req.LeafColor == nil {
		return nil, fmt.Errorf("%w: leaf color required", ErrInvalidRequest)
	}
	leafCode := *req.LeafColor

	leafColor, err := encoders.LeafColorLabel(leafCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLeafColor, leafCode)
	}

	plantCode, err := s.encoders.Encode(encoders.FieldPlantName, req.PlantName)
	if err != nil {
		return nil, err
	}

	record := model.NewRecord(plantCode, leafCode, req.Symptoms)

	codes, err := s.classifier.Predict(ctx, []model.FeatureRecord{record})
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if len(codes) != 1 {
		return nil, fmt.Errorf("%w: got %d predictions for 1 record", model.ErrInference, len(codes))
	}

	disease, err := s.decodeDisease(codes[0])
	if err != nil {
		return nil, err
	}

	s.logger.Debug(
		"prediction complete",
		"plant", req.PlantName,
		"leaf_color", leafColor,
		"disease", disease,
	)

	return &Result{
		PlantName:   req.PlantName,
		LeafColor:   leafColor,
		Symptoms:    req.Symptoms,
		Disease:     disease,
		DiseaseCode: codes[0],
	}, nil
}

// decodeDisease maps a class code to its label, or to the code's text when
// no disease encoder was shipped with the model.
func (s *system) decodeDisease(code int) (string, error) {
	if !s.encoders.Has(encoders.FieldDisease) {
		return strconv.Itoa(code), nil
	}
	return s.encoders.Decode(encoders.FieldDisease, code)
}

func (s *system) Record(ctx context.Context, req Request) (*Outcome, error) {
	result, err := s.Predict(ctx, req)
	if err != nil {
		return nil, err
	}

	entry := history.NewEntry(
		result.PlantName,
		result.LeafColor,
		req.Symptoms.Flags(),
		result.Disease,
	)

	outcome := &Outcome{
		Result: result,
		Entry:  entry,
		Saved:  true,
	}

	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.Error("save prediction failed", "error", err)
		outcome.Saved = false
		outcome.SaveError = err.Error()
		outcome.saveErr = err
	}

	return outcome, nil
}
