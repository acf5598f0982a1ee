package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tanagerbot/tanager/internal/bot"
)

// runBot wraps the shared lifecycle of a bot command: build the runtime,
// install signal handling, log in, run, report stats.
func runBot(env *commandEnv, run func(ctx context.Context, rt *runtime, editor bot.Editor) (bot.Stats, error)) error {
	rt, err := env.build()
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	editor, err := rt.editor(ctx)
	if err != nil {
		return err
	}

	stats, err := run(ctx, rt, editor)
	rt.logger.Info("run finished",
		slog.Int("examined", stats.Examined),
		slog.Int("edited", stats.Edited),
		slog.Int("skipped", stats.Skipped))
	return err
}

func newArtistCountryCommand(env *commandEnv) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "artist-country <candidates.jsonl>",
		Short: "Fill in artist country, type, gender and dates from Wikipedia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := bot.LoadCandidates[bot.ArtistCandidate](args[0])
			if err != nil {
				return err
			}
			return runBot(env, func(ctx context.Context, rt *runtime, editor bot.Editor) (bot.Stats, error) {
				b := &bot.ArtistCountry{
					Logger: rt.logger,
					Store:  rt.store,
					Editor: editor,
					Wiki:   rt.wiki,
					Lang:   lang,
				}
				return b.Run(ctx, candidates)
			})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "Wikipedia language edition")
	return cmd
}

func newLinkArtistsCommand(env *commandEnv) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "link-artists <candidates.jsonl>",
		Short: "Link artists to their Wikipedia pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := bot.LoadCandidates[bot.ArtistCandidate](args[0])
			if err != nil {
				return err
			}
			return runBot(env, func(ctx context.Context, rt *runtime, editor bot.Editor) (bot.Stats, error) {
				b := &bot.LinkArtists{
					Logger: rt.logger,
					Store:  rt.store,
					Editor: editor,
					Wiki:   rt.wiki,
					Search: rt.search,
					Lang:   lang,
				}
				return b.Run(ctx, candidates)
			})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "Wikipedia language edition")
	return cmd
}

func newLinkArtistsJaCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "link-artists-ja <candidates.jsonl>",
		Short: "Link artists with Japanese-script names to Japanese Wikipedia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := bot.LoadCandidates[bot.ArtistCandidate](args[0])
			if err != nil {
				return err
			}
			return runBot(env, func(ctx context.Context, rt *runtime, editor bot.Editor) (bot.Stats, error) {
				b := &bot.LinkArtistsJa{
					Logger: rt.logger,
					Store:  rt.store,
					Editor: editor,
					Wiki:   rt.wiki,
					Search: rt.search,
				}
				return b.Run(ctx, candidates)
			})
		},
	}
}

func newLinkReleaseGroupsCommand(env *commandEnv) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "link-release-groups <candidates.jsonl>",
		Short: "Link release groups to their Wikipedia album pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := bot.LoadCandidates[bot.ReleaseGroupCandidate](args[0])
			if err != nil {
				return err
			}
			return runBot(env, func(ctx context.Context, rt *runtime, editor bot.Editor) (bot.Stats, error) {
				b := &bot.LinkReleaseGroups{
					Logger: rt.logger,
					Store:  rt.store,
					Editor: editor,
					Wiki:   rt.wiki,
					Search: rt.search,
					Lang:   lang,
				}
				return b.Run(ctx, candidates)
			})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "Wikipedia language edition")
	return cmd
}

func newLinkLabelsCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "link-labels <candidates.jsonl>",
		Short: "Link labels to their Wikipedia pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := bot.LoadCandidates[bot.LabelCandidate](args[0])
			if err != nil {
				return err
			}
			return runBot(env, func(ctx context.Context, rt *runtime, editor bot.Editor) (bot.Stats, error) {
				b := &bot.LinkLabels{
					Logger: rt.logger,
					Store:  rt.store,
					Editor: editor,
					Wiki:   rt.wiki,
					Search: rt.search,
				}
				return b.Run(ctx, candidates)
			})
		},
	}
}

func newDiscogsMastersCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "discogs-masters <candidates.jsonl>",
		Short: "Link release groups to Discogs master pages their release links agree on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := bot.LoadCandidates[bot.MasterCandidate](args[0])
			if err != nil {
				return err
			}
			return runBot(env, func(ctx context.Context, rt *runtime, editor bot.Editor) (bot.Stats, error) {
				b := &bot.DiscogsMasters{
					Logger:  rt.logger,
					Store:   rt.store,
					Editor:  editor,
					Discogs: rt.discogsClient(),
				}
				return b.Run(ctx, candidates)
			})
		},
	}
}
