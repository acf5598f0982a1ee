package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tanagerbot/tanager/internal/backup"
	"github.com/tanagerbot/tanager/internal/maintenance"
)

func newDBCommand(env *commandEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect and maintain the processed-entity database",
	}
	cmd.AddCommand(newDBStatusCommand(env))
	cmd.AddCommand(newDBOptimizeCommand(env))
	cmd.AddCommand(newDBVacuumCommand(env))
	cmd.AddCommand(newDBBackupCommand(env))
	cmd.AddCommand(newDBBackupsCommand(env))
	return cmd
}

func newDBStatusCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show database size and per-bot processed counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.build()
			if err != nil {
				return err
			}
			defer rt.close()

			svc := maintenance.NewService(rt.db, rt.cfg.Data.DatabasePath, rt.logger)
			st, err := svc.Status(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintf(w, "database\t%s\n", rt.cfg.Data.DatabasePath)
			fmt.Fprintf(w, "db size\t%d bytes\n", st.DBFileSize)
			fmt.Fprintf(w, "wal size\t%d bytes\n", st.WALFileSize)
			fmt.Fprintf(w, "pages\t%d x %d bytes\n", st.PageCount, st.PageSize)
			for _, bc := range st.Processed {
				fmt.Fprintf(w, "%s\t%d processed\n", bc.Bot, bc.Count)
			}
			return w.Flush()
		},
	}
}

func newDBOptimizeCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Run PRAGMA optimize and a WAL checkpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.build()
			if err != nil {
				return err
			}
			defer rt.close()

			svc := maintenance.NewService(rt.db, rt.cfg.Data.DatabasePath, rt.logger)
			return svc.Optimize(cmd.Context())
		},
	}
}

func newDBVacuumCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "vacuum",
		Short: "Rebuild the database file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.build()
			if err != nil {
				return err
			}
			defer rt.close()

			svc := maintenance.NewService(rt.db, rt.cfg.Data.DatabasePath, rt.logger)
			return svc.Vacuum(cmd.Context())
		},
	}
}

func newDBBackupCommand(env *commandEnv) *cobra.Command {
	var dir string
	var keep int
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the database and prune old snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.build()
			if err != nil {
				return err
			}
			defer rt.close()

			if dir == "" {
				dir = filepath.Join(rt.cfg.Data.Dir, "backups")
			}
			svc := backup.NewService(rt.db, dir, keep, rt.logger)
			info, err := svc.Backup(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Prune(); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s (%d bytes)\n", filepath.Join(dir, info.Filename), info.Size)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Backup directory (default <data dir>/backups)")
	cmd.Flags().IntVar(&keep, "keep", 7, "Number of backups to keep, 0 keeps all")
	return cmd
}

func newDBBackupsCommand(env *commandEnv) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "List database snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.build()
			if err != nil {
				return err
			}
			defer rt.close()

			if dir == "" {
				dir = filepath.Join(rt.cfg.Data.Dir, "backups")
			}
			svc := backup.NewService(rt.db, dir, 0, rt.logger)
			backups, err := svc.ListBackups()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			for _, b := range backups {
				fmt.Fprintf(w, "%s\t%d bytes\t%s\n", b.Filename, b.Size, b.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Backup directory (default <data dir>/backups)")
	return cmd
}
