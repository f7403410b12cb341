package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/atlas/internal/adapters/narrator" //nolint:depguard // Wired in app layer
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/atlas/internal/engine/daylife"
	"go.trai.ch/atlas/internal/engine/rabbithole"
	"go.trai.ch/atlas/internal/ui/style"
	"go.trai.ch/zerr"
)

// discovery builds the day-in-the-life almanac and the topic explorer.
// Without a narrator, topics outside the seed graph get the fallback answer.
func (a *App) discovery(cfg *domain.Config, narr ports.Narrator) (*daylife.Almanac, *rabbithole.Explorer, error) {
	almanac, err := daylife.Seed()
	if err != nil {
		return nil, nil, err
	}
	opts := []rabbithole.Option{
		rabbithole.WithLogger(a.logger),
		rabbithole.WithTimeout(cfg.Lookup.Timeout),
	}
	if narr != nil {
		opts = append(opts, rabbithole.WithNarrator(narr))
	}
	explorer, err := rabbithole.Seed(opts...)
	if err != nil {
		return nil, nil, err
	}
	return almanac, explorer, nil
}

// Life prints what an ordinary day looked like for each social role of a region.
func (a *App) Life(_ context.Context, region string, y *domain.Year) error {
	almanac, err := daylife.Seed()
	if err != nil {
		return err
	}
	life, err := almanac.Life(region, *yearOr(y))
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s · %s\n", life.Region, life.Label)
	for _, r := range life.Roles {
		fmt.Fprintf(&b, "\n  %s %s\n", daylife.RoleIcon(r.Role), r.Title)
		for _, row := range [][2]string{
			{"dawn", r.Wake},
			{"morning", r.Morning},
			{"midday", r.Midday},
			{"afternoon", r.Afternoon},
			{"evening", r.Evening},
			{"worries", r.Concerns},
			{"lifespan", r.LifeExpectancy},
			{"diet", r.Diet},
		} {
			if row[1] != "" {
				fmt.Fprintf(&b, "    %-10s %s\n", row[0], row[1])
			}
		}
	}
	_, err = fmt.Fprint(a.stdout, b.String())
	return err
}

// Hole prints a topic and the rabbit holes leading away from it.
func (a *App) Hole(ctx context.Context, topic string) error {
	cfg, err := a.configs.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	narr, err := narrator.New(cfg.Narrator, a.client)
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		narr = nil
	case err != nil:
		return err
	}
	_, explorer, err := a.discovery(cfg, narr)
	if err != nil {
		return err
	}

	t, err := explorer.Explore(ctx, topic)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n  %s\n", t.Name, t.Summary)
	if len(t.Connections) == 0 {
		b.WriteString("  no known connections\n")
	}
	for _, c := range t.Connections {
		fmt.Fprintf(&b, "  %s %s (%s)\n      %s\n", style.Arrow, c.Topic, c.Kind, c.Question)
	}
	_, err = fmt.Fprint(a.stdout, b.String())
	return err
}
