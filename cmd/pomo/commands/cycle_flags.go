package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/pomo/internal/conventions"
	"github.com/slok/pomo/internal/model"
	"github.com/slok/pomo/internal/storage"
	storageio "github.com/slok/pomo/internal/storage/io"
)

// intFlag is an int flag that knows if the user set it, from the command line
// or from its env var.
type intFlag struct {
	value  int
	set    bool
	envVar string
}

func (f intFlag) isSet() bool {
	return f.set || envVarSet(f.envVar)
}

// cycleFlags are the cycle configuration flags shared by the commands.
type cycleFlags struct {
	work     intFlag
	short    intFlag
	long     intFlag
	perCycle intFlag
	max      intFlag
}

func (f *cycleFlags) register(cmd *kingpin.CmdClause) {
	add := func(name, help string, def int, flag *intFlag) {
		flag.envVar = envVarName(name)
		cmd.Flag(name, help).
			Envar(flag.envVar).
			Default(strconv.Itoa(def)).
			IsSetByUser(&flag.set).
			IntVar(&flag.value)
	}

	add("work", "Work duration in minutes.", model.DefaultWorkMinutes, &f.work)
	add("short", "Short break duration in minutes.", model.DefaultShortBreakMinutes, &f.short)
	add("long", "Long break duration in minutes.", model.DefaultLongBreakMinutes, &f.long)
	add("pomodoro-cycle", "Pomodoros per cycle before a long break.", model.DefaultPomodorosPerCycle, &f.perCycle)
	add("max", "Stop after this many completed pomodoros (0 means run until interrupted).", 0, &f.max)
}

// resolveCycleConfig returns the cycle configuration, the precedence is:
// defaults < cycle profile file < user set flags.
func resolveCycleConfig(ctx context.Context, rootCmd *RootCommand, flags cycleFlags) (model.CycleConfig, error) {
	logger := rootCmd.Logger

	profile, err := loadCycleProfile(ctx, rootCmd)
	if err != nil {
		return model.CycleConfig{}, err
	}

	minutes := func(d time.Duration) int { return int(d / time.Minute) }
	pick := func(flag intFlag, profileValue int) int {
		if flag.isSet() {
			return flag.value
		}
		return profileValue
	}

	cfg := model.NewCycleConfigFromMinutes(
		pick(flags.work, minutes(profile.Work)),
		pick(flags.short, minutes(profile.ShortBreak)),
		pick(flags.long, minutes(profile.LongBreak)),
		pick(flags.perCycle, profile.PomodorosPerCycle),
		pick(flags.max, profile.MaxPomodoros),
	)
	logger.Debugf("resolved cycle config: %+v", cfg)

	return cfg, nil
}

// loadCycleProfile loads the cycle profile file. The default profile is optional,
// a profile set by the user must exist.
func loadCycleProfile(ctx context.Context, rootCmd *RootCommand) (model.CycleConfig, error) {
	logger := rootCmd.Logger

	configPath := rootCmd.ConfigPath
	if configPath == "" {
		return model.DefaultCycleConfig(), nil
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return model.CycleConfig{}, fmt.Errorf("could not resolve cycle profile path: %w", err)
		}
		configPath = absPath
	}

	dir, file := filepath.Split(configPath)
	var repo storage.CycleConfigRepository = storageio.NewCycleYAMLRepository(os.DirFS(dir))
	cfg, err := repo.GetCycleConfig(ctx, file)
	if err != nil {
		userSet := rootCmd.ConfigPathSet || envVarSet(conventions.EnvPrefix+"_CONFIG")
		if errors.Is(err, fs.ErrNotExist) && !userSet {
			logger.Debugf("no cycle profile at %s, using defaults", configPath)
			return model.DefaultCycleConfig(), nil
		}
		return model.CycleConfig{}, fmt.Errorf("could not load cycle profile: %w", err)
	}

	logger.Infof("loaded cycle profile from %s", configPath)

	return cfg, nil
}

func envVarName(flag string) string {
	return conventions.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// envVarSet follows kingpin's envar rule, empty values are ignored.
func envVarSet(name string) bool {
	return os.Getenv(name) != ""
}
