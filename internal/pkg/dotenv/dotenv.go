package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Flag переопределяет переменную окружения Env значением флага Name.
type Flag struct {
	Name  string
	Env   string
	Usage string
}

// Load читает .env (если он есть) и разбирает флаги командной строки.
// Значения из уже выставленного окружения .env не перетирает.
func Load(flags ...Flag) error {
	return load(flag.CommandLine, os.Args[1:], ".env", flags...)
}

func load(set *flag.FlagSet, args []string, path string, flags ...Flag) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	values := make([]*string, len(flags))
	for i, f := range flags {
		values[i] = set.String(f.Name, "", f.Usage)
	}

	if err := set.Parse(args); err != nil {
		return err
	}

	for i, f := range flags {
		if *values[i] == "" {
			continue
		}
		if err := os.Setenv(f.Env, *values[i]); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", f.Env, err)
		}
	}
	return nil
}
