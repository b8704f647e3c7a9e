package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/config"
	"github.com/tbourn/companion-insights/internal/repo"
	"github.com/tbourn/companion-insights/internal/services"
	"github.com/tbourn/companion-insights/internal/sysutil"
)

// app carries the persistent flags and the services built from them. One
// app backs one command invocation.
type app struct {
	driver  string
	dbURL   string
	dbPath  string
	output  string
	timeout time.Duration
	verbose bool

	out    io.Writer
	log    zerolog.Logger
	db     *gorm.DB
	query  *services.QueryService
	report *services.ReportService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "insightsctl",
		Short:         "Query companion app analytics from the terminal",
		Long:          `Run the dashboard reports against the companion store and print them as tables or JSON. Store and time-zone settings come from the same environment as the server; flags override them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.driver, "db-driver", "", "store driver: postgres|sqlite (default from DB_DRIVER)")
	pf.StringVar(&a.dbURL, "db-url", "", "postgres DSN (default from DATABASE_URL)")
	pf.StringVar(&a.dbPath, "db-path", "", "sqlite file (default from DB_PATH)")
	pf.StringVarP(&a.output, "output", "o", "table", "output format: table|json")
	pf.DurationVar(&a.timeout, "timeout", 0, "per-report timeout (default from DB_QUERY_TIMEOUT)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log each query")

	rootCmd.AddCommand(
		newOverviewCmd(a),
		newRankingCmd(a),
		newRetentionCmd(a),
		newQuestsCmd(a),
		newUserCmd(a),
		newSpamCmd(a),
	)
	return rootCmd
}

// open loads the environment configuration, applies flag overrides, and
// builds the services.
func (a *app) open(cmd *cobra.Command) error {
	switch a.output {
	case "table", "json":
	default:
		return fmt.Errorf("unknown output %q: want table or json", a.output)
	}

	a.out = cmd.OutOrStdout()
	a.log = sysutil.NewLogger(cmd.ErrOrStderr(), true)
	if a.verbose {
		sysutil.SetLogLevel("debug")
	} else {
		sysutil.SetLogLevel("warn")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dbCfg := cfg.DB
	dbCfg.Driver = sysutil.FirstNonEmpty(a.driver, dbCfg.Driver)
	dbCfg.URL = sysutil.FirstNonEmpty(a.dbURL, dbCfg.URL)
	dbCfg.Path = sysutil.FirstNonEmpty(a.dbPath, dbCfg.Path)
	dbCfg.AutoMigrate = false
	if a.timeout > 0 {
		dbCfg.QueryTimeout = a.timeout
	}

	zones, err := services.NewZones(cfg.Time)
	if err != nil {
		return err
	}
	if a.db, err = repo.Open(dbCfg); err != nil {
		return fmt.Errorf("open %s store: %w", dbCfg.Driver, err)
	}
	a.query = services.NewQueryService(a.db, zones, dbCfg.QueryTimeout)
	a.report = services.NewReportService(a.db, zones, cfg.QuestIDs, dbCfg.QueryTimeout)

	a.log.Debug().Str("driver", dbCfg.Driver).Strs("tz_policies", zones.Effective()).Msg("store opened")
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
