// Package browser owns the Playwright runtime and the browsers launched
// from it. The trading driver takes an already-launched browser; this
// package is how the CLI (or any other caller) produces one.
package browser

import (
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// BrowserType selects which browser engine to launch.
type BrowserType string

const (
	Chromium BrowserType = "chromium"
	Firefox  BrowserType = "firefox"
	WebKit   BrowserType = "webkit"
)

// LaunchOptions configures a browser launch.
type LaunchOptions struct {
	// Type selects the engine; defaults to Firefox, which keeps a
	// visible window the user can log in through.
	Type BrowserType

	// Headless controls whether the browser runs without a visible
	// window. Semi-automated trading needs a window for the manual
	// login, so this defaults to false.
	Headless bool
}

// Manager initializes the Playwright runtime once and tracks the browsers
// launched from it so Shutdown can release everything exactly once.
type Manager struct {
	mu          sync.Mutex
	pw          *playwright.Playwright
	browsers    []playwright.Browser
	initialized bool
}

// NewManager creates an uninitialized manager.
func NewManager() *Manager {
	return &Manager{}
}

// Initialize installs (if needed) and starts the Playwright runtime. It is
// safe to call more than once; subsequent calls are no-ops.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Discard driver output so it does not interleave with the
	// confirmation prompt on stdout.
	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(opts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	m.pw = pw
	m.initialized = true
	return nil
}

// Launch starts a browser with the given options. The browser stays open
// until Shutdown or until the caller closes it.
func (m *Manager) Launch(opts LaunchOptions) (playwright.Browser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil, fmt.Errorf("manager not initialized")
	}

	if opts.Type == "" {
		opts.Type = Firefox
	}

	var engine playwright.BrowserType
	switch opts.Type {
	case Chromium:
		engine = m.pw.Chromium
	case Firefox:
		engine = m.pw.Firefox
	case WebKit:
		engine = m.pw.WebKit
	default:
		return nil, fmt.Errorf("unknown browser type %q", opts.Type)
	}

	browser, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &opts.Headless,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch %s: %w", opts.Type, err)
	}

	m.browsers = append(m.browsers, browser)
	return browser, nil
}

// Shutdown closes every launched browser and stops the Playwright runtime.
// Safe to call more than once.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, browser := range m.browsers {
		if err := browser.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.browsers = nil

	if m.initialized && m.pw != nil {
		if err := m.pw.Stop(); err != nil {
			errs = append(errs, err)
		}
		m.pw = nil
		m.initialized = false
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}
	return nil
}
