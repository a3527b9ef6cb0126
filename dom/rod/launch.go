package rod

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/joho/godotenv"
)

const (
	EnvBrowserBin = "DOMTEST_BROWSER_BIN"
	EnvHeadless   = "DOMTEST_HEADLESS"
	EnvNoSandbox  = "DOMTEST_NO_SANDBOX"
)

var ErrNoBrowser = errors.New("no browser found, set " + EnvBrowserBin)

// Config says which browser Launch starts and how
type Config struct {
	// Bin is the browser binary. Empty means the first one found on the
	// system; Launch never downloads one.
	Bin       string
	Headless  bool
	NoSandbox bool
	Logger    *slog.Logger
}

// ConfigFromEnv reads the DOMTEST_* variables, after loading them from a
// .env file in the working directory when there is one. The browser is
// headless unless DOMTEST_HEADLESS says otherwise.
func ConfigFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{
		Bin:      os.Getenv(EnvBrowserBin),
		Headless: true,
	}

	var err error
	if cfg.Headless, err = envBool(EnvHeadless, cfg.Headless); err != nil {
		return Config{}, err
	}
	if cfg.NoSandbox, err = envBool(EnvNoSandbox, cfg.NoSandbox); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envBool(name string, def bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("parsing %s: %w", name, err)
	}

	return b, nil
}

// Browser is a connected browser along with the process Launch started
type Browser struct {
	*rod.Browser
	launcher *launcher.Launcher
}

// Close closes the browser and kills its process
func (b *Browser) Close() error {
	err := b.Browser.Close()
	b.launcher.Kill()
	return err
}

// NewDocument opens a blank page and returns it as a Document
func (b *Browser) NewDocument() (*Document, error) {
	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}

	return NewDocument(page), nil
}

// Launch starts a browser process and connects to it
func Launch(cfg Config) (*Browser, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	bin := cfg.Bin
	if bin == "" {
		path, found := launcher.LookPath()
		if !found {
			return nil, ErrNoBrowser
		}
		bin = path
	}

	l := launcher.New().
		Bin(bin).
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox)

	log.Debug("launching browser", "bin", bin, "headless", cfg.Headless)
	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching %s: %w", bin, err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}

	return &Browser{Browser: browser, launcher: l}, nil
}
