package stylist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/meera/wardrobe-stylist/internal/closet"
	"github.com/meera/wardrobe-stylist/internal/llm"
	"github.com/meera/wardrobe-stylist/internal/occasions"
	"github.com/meera/wardrobe-stylist/internal/weather"
)

// WardrobeSource supplies a profile's wardrobe snapshot.
type WardrobeSource interface {
	ItemsByProfile(ctx context.Context, profileID uuid.UUID) ([]closet.Item, error)
}

// WeatherProvider supplies current weather for a city.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (*weather.Weather, error)
}

// Generator produces free-form styling text from a system instruction and a
// user message.
type Generator interface {
	GenerateChat(ctx context.Context, system, user string, tier llm.ModelTier) (string, error)
}

// Stylist runs the full suggestion flow: load wardrobe and weather, match the
// occasion, filter the closet, prompt the generator, repair and parse the
// reply.
type Stylist struct {
	wardrobe  WardrobeSource
	weather   WeatherProvider
	generator Generator
	rules     *occasions.Table
	shuffle   closet.Shuffle
}

// Option configures a Stylist.
type Option func(*Stylist)

// WithShuffle overrides the bucket shuffle. Tests inject closet.NoShuffle to
// make bucket order deterministic.
func WithShuffle(shuffle closet.Shuffle) Option {
	return func(s *Stylist) {
		s.shuffle = shuffle
	}
}

// New creates a Stylist.
func New(wardrobe WardrobeSource, weatherProvider WeatherProvider, generator Generator, rules *occasions.Table, opts ...Option) *Stylist {
	s := &Stylist{
		wardrobe:  wardrobe,
		weather:   weatherProvider,
		generator: generator,
		rules:     rules,
		shuffle:   closet.RandomShuffle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request identifies whose wardrobe to style and for what.
type Request struct {
	ProfileID   uuid.UUID
	ProfileName string
	Occasion    string
	City        string
}

// Result is the full styling outcome for one request.
type Result struct {
	Suggestion      string             `json:"suggestion"`
	Outfit          OutfitSuggestion   `json:"outfit"`
	Weather         *weather.Weather   `json:"weather,omitempty"`
	MatchedOccasion string             `json:"matched_occasion,omitempty"`
	Items           []closet.Item      `json:"items,omitempty"`
	WardrobeEmpty   bool               `json:"-"`
}

// Suggest runs the suggestion flow. The wardrobe load and the weather fetch
// run concurrently; a weather failure degrades to "no weather context" while
// a wardrobe failure fails the request.
func (s *Stylist) Suggest(ctx context.Context, req Request) (*Result, error) {
	var (
		items []closet.Item
		wx    *weather.Weather
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := s.wardrobe.ItemsByProfile(gctx, req.ProfileID)
		if err != nil {
			return fmt.Errorf("failed to load wardrobe: %w", err)
		}
		items = loaded
		return nil
	})
	g.Go(func() error {
		current, err := s.weather.Current(gctx, req.City)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("city", req.City).Msg("weather unavailable, styling without it")
			return nil
		}
		wx = current
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return &Result{
			Suggestion:    fmt.Sprintf("%s's wardrobe is empty! Add items first.", req.ProfileName),
			WardrobeEmpty: true,
		}, nil
	}

	occasionName, rule := s.rules.Match(req.Occasion)
	selection := closet.Filter(items, rule, s.shuffle)

	prompt := BuildPrompt(PromptInput{
		ProfileName:  req.ProfileName,
		OccasionName: occasionName,
		Rule:         rule,
		Selection:    selection,
		Weather:      wx,
		Advice:       weather.Advice(wx),
	})

	reply, err := s.generator.GenerateChat(ctx, prompt, BuildUserMessage(req.Occasion), llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate styling suggestion: %w", err)
	}

	repaired := Repair(reply)
	if NeedsTopFallback(repaired) {
		zerolog.Ctx(ctx).Warn().
			Str("occasion", occasionName).
			Msg("generator produced no usable Top, placeholder applied")
	}

	return &Result{
		Suggestion:      repaired,
		Outfit:          ParseSuggestion(repaired),
		Weather:         wx,
		MatchedOccasion: occasionName,
		Items:           items,
	}, nil
}
