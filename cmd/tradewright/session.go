package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/entrhq/tradewright/pkg/browser"
	"github.com/entrhq/tradewright/pkg/config"
	"github.com/entrhq/tradewright/pkg/driver"
	"github.com/entrhq/tradewright/pkg/logging"
)

// withSession launches a browser, opens a trading session on the login
// page, waits for the user to finish logging in, and runs fn. The session
// and browser are released on every exit path.
func withSession(flags *rootFlags, fn func(*driver.Session, *config.Config) error) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	logger, logErr := logging.NewLogger("cli")
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "file logging unavailable: %v\n", logErr)
	}
	defer logger.Close()

	manager := browser.NewManager()
	if err := manager.Initialize(); err != nil {
		return err
	}
	defer manager.Shutdown()

	b, err := manager.Launch(browser.LaunchOptions{
		Type:     browser.BrowserType(cfg.Browser),
		Headless: cfg.Headless,
	})
	if err != nil {
		return err
	}

	session, err := driver.New(b,
		driver.WithTimeout(cfg.Timeout()),
		driver.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer session.Close()

	fmt.Println("Log in to fidelity.com in the browser window, then press Enter.")
	if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil {
		return fmt.Errorf("aborted before login completed: %w", err)
	}

	return fn(session, cfg)
}

// requireAccount rejects commands invoked without --account.
func requireAccount(flags *rootFlags) error {
	if flags.account == "" {
		return fmt.Errorf("account is required (use --account)")
	}
	return nil
}

// printResult reports an order outcome. A rejected or declined order is a
// normal driver outcome, but the CLI surfaces it as a nonzero exit.
func printResult(result *driver.OrderResult) error {
	if result.Success {
		fmt.Printf("Order placed: %s\n", result.Message)
		return nil
	}
	return fmt.Errorf("order not placed: %s", result.Message)
}
