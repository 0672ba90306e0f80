package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/awnumar/memguard"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mpw "github.com/masterpassword/mpw-go"
	"github.com/masterpassword/mpw-go/internal/benchmark"
	"github.com/masterpassword/mpw-go/internal/identicon"
)

// options are the raw command-line values before defaults are applied.
type options struct {
	user            string
	resultType      string
	counter         string
	algorithm       string
	variant         string
	context         string
	envFile         string
	benchmark       bool
	benchIterations int
	clip            bool
	verbose         bool
}

// request is a fully resolved invocation.
type request struct {
	site      *mpw.Site
	identity  string
	algorithm mpw.Algorithm
}

func run(args []string, cfg *Config) error {
	cmd := newRootCmd(cfg)
	if len(args) > 0 {
		args = args[1:]
	}
	cmd.SetArgs(args)
	cmd.SetIn(cfg.Stdin)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)
	return cmd.ExecuteContext(context.Background())
}

func newRootCmd(cfg *Config) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mpw [SITE]",
		Short: "mpw - the stateless password manager",
		Long: `mpw derives site passwords, login names and security answers from
your full name and master password. Nothing is stored: the same inputs
always give the same result.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd.Context(), cfg, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.user, "user", "u", "", "full name of the user (default $"+envFullName+")")
	f.StringVarP(&opts.resultType, "type", "t", "", `template of the result (default $`+envSiteType+`, or long for password, name for login)
  x, max, maximum | 20 characters, contains symbols
  l, long         | copy-friendly, 14 characters, contains symbols
  m, med, medium  | copy-friendly, 8 characters, contains symbols
  b, basic        | 8 characters, no symbols
  s, short        | copy-friendly, 4 characters, no symbols
  i, pin          | 4 numbers
  n, name         | 9 letter name
  p, phrase       | 20 character sentence`)
	f.StringVarP(&opts.counter, "counter", "c", "", "site counter (default $"+envSiteCounter+" or 1)")
	f.StringVarP(&opts.algorithm, "algo", "a", "", "algorithm version 0, 1, 2, 3 or next (default $"+envAlgorithm+" or 3)")
	f.StringVarP(&opts.variant, "variant", "v", "password", `kind of content to generate
  p, password | the password to log in with
  l, login    | the user name to log in as
  a, answer   | the answer to a security question`)
	f.StringVarP(&opts.context, "context", "C", "", "variant-specific context; for answers, the most significant word(s) of the question")
	f.BoolVarP(&opts.benchmark, "benchmark", "b", false, "benchmark every algorithm version and exit")
	f.IntVar(&opts.benchIterations, "bench-iterations", benchmark.DefaultIterations, "derivations per algorithm when benchmarking")
	f.BoolVarP(&opts.clip, "clip", "x", false, "copy the result to the clipboard instead of printing it")
	f.StringVar(&opts.envFile, "env-file", "", "dotenv file with MP_* defaults (default $HOME/"+defaultEnvFile+")")
	f.BoolVar(&opts.verbose, "verbose", false, "log derivation details to stderr")

	return cmd
}

func execute(ctx context.Context, cfg *Config, opts *options, args []string) error {
	logger := newLogger(cfg.Stderr, opts.verbose)

	if opts.benchmark {
		stats, err := benchmark.Run(ctx, benchmark.Config{Iterations: opts.benchIterations})
		if err != nil {
			return fmt.Errorf("benchmark: %w", err)
		}
		return benchmark.Print(cfg.Stdout, stats)
	}

	env, err := loadEnv(cfg, opts.envFile)
	if err != nil {
		return err
	}

	in := bufio.NewReader(cfg.Stdin)
	req, err := resolve(cfg, opts, args, env, in)
	if err != nil {
		return err
	}

	secret, err := readSecret(cfg, in)
	if err != nil {
		return err
	}
	locked := memguard.NewBufferFromBytes(secret)
	defer locked.Destroy()

	icon := identicon.Generate(req.identity, locked.Bytes())

	logger.Debug("deriving",
		"algorithm", req.algorithm.String(),
		"variant", req.site.Variant.String(),
		"type", req.site.Type.String(),
		"counter", req.site.Counter,
	)

	start := time.Now()
	key, err := mpw.NewMasterKey(bytes.Clone(locked.Bytes()), req.identity, req.algorithm)
	if err != nil {
		return err
	}
	defer key.Wipe()
	logger.Debug("master key derived", "duration", time.Since(start).Round(time.Millisecond))
	if id, err := key.KeyID(); err == nil {
		logger.Debug("master key", "key_id", id)
	}

	result, err := key.Result(req.site)
	if err != nil {
		return err
	}

	rendered := icon.String()
	if cfg.IsTerminal != nil && cfg.IsTerminal(cfg.Stdout) {
		rendered = icon.Render(cfg.Stdout)
	}

	if opts.clip {
		if cfg.CopyToClipboard == nil {
			return errors.New("clipboard is not available")
		}
		if err := cfg.CopyToClipboard(result); err != nil {
			fmt.Fprintf(cfg.Stderr, "[ %s ]: could not copy to clipboard\n", rendered)
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		_, err := fmt.Fprintf(cfg.Stdout, "[ %s ]: copied to clipboard\n", rendered)
		return err
	}

	_, err = fmt.Fprintf(cfg.Stdout, "[ %s ]: %s\n", rendered, result)
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// env resolves MP_* defaults: process environment first, then the dotenv file.
type env struct {
	getenv func(string) string
	file   map[string]string
}

func (e env) lookup(key string) string {
	if e.getenv != nil {
		if v := e.getenv(key); v != "" {
			return v
		}
	}
	return e.file[key]
}

func loadEnv(cfg *Config, path string) (env, error) {
	e := env{getenv: cfg.Getenv}

	explicit := path != ""
	if !explicit {
		path = cfg.defaultEnvFilePath()
	}
	if path == "" {
		return e, nil
	}

	file, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return e, nil
		}
		return e, fmt.Errorf("read env file %s: %w", path, err)
	}
	e.file = file
	return e, nil
}

func resolve(cfg *Config, opts *options, args []string, e env, in *bufio.Reader) (*request, error) {
	siteName := ""
	if len(args) > 0 {
		siteName = args[0]
	}
	if siteName == "" {
		line, err := prompt(cfg, in, "Site Name: ")
		if err != nil {
			return nil, err
		}
		siteName = line
	}
	if siteName == "" {
		return nil, &mpw.ValidationError{Field: "site name", Err: mpw.ErrEmptySiteName}
	}

	identity := firstNonEmpty(opts.user, e.lookup(envFullName))
	if identity == "" {
		line, err := prompt(cfg, in, "User Name: ")
		if err != nil {
			return nil, err
		}
		identity = line
	}
	if identity == "" {
		return nil, &mpw.ValidationError{Field: "identity", Err: mpw.ErrEmptyIdentity}
	}

	variant, err := mpw.ParseVariant(opts.variant)
	if err != nil {
		return nil, err
	}

	siteOpts := []mpw.SiteOption{mpw.WithVariant(variant), mpw.WithContext(opts.context)}

	if token := firstNonEmpty(opts.resultType, e.lookup(envSiteType)); token != "" {
		t, err := mpw.ParseResultType(token)
		if err != nil {
			return nil, err
		}
		siteOpts = append(siteOpts, mpw.WithResultType(t))
	}

	if token := firstNonEmpty(opts.counter, e.lookup(envSiteCounter)); token != "" {
		counter, err := strconv.ParseUint(strings.TrimSpace(token), 10, 32)
		if err != nil {
			return nil, &mpw.ValidationError{Field: "counter", Value: token, Err: mpw.ErrInvalidCounter}
		}
		siteOpts = append(siteOpts, mpw.WithCounter(uint32(counter)))
	}

	algorithm := mpw.AlgorithmDefault
	if token := firstNonEmpty(opts.algorithm, e.lookup(envAlgorithm)); token != "" {
		if algorithm, err = mpw.ParseAlgorithm(token); err != nil {
			return nil, err
		}
	}

	site, err := mpw.NewSite(siteName, siteOpts...)
	if err != nil {
		return nil, err
	}

	return &request{site: site, identity: identity, algorithm: algorithm}, nil
}

func prompt(cfg *Config, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(cfg.Stderr, label)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readSecret never returns an empty secret: an empty or failed read is
// ErrSecretUnavailable.
func readSecret(cfg *Config, in *bufio.Reader) ([]byte, error) {
	const label = "Your master password: "

	var (
		secret []byte
		err    error
	)
	if cfg.ReadSecret != nil {
		secret, err = cfg.ReadSecret(label)
	} else {
		fmt.Fprint(cfg.Stderr, label)
		secret, err = in.ReadBytes('\n')
		if errors.Is(err, io.EOF) && len(secret) > 0 {
			err = nil
		}
		secret = bytes.TrimRight(secret, "\r\n")
	}

	if err != nil {
		memguard.WipeBytes(secret)
		return nil, fmt.Errorf("%w: %v", mpw.ErrSecretUnavailable, err)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty input", mpw.ErrSecretUnavailable)
	}
	return secret, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
