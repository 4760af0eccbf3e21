// ABOUTME: Headless-browser screenshot capture of a task's web page
// ABOUTME: Signs in to the Tracsis web UI with playwright and snapshots the task table

package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// DefaultWebURL is the production Tracsis web UI. The snap flow authenticates
// against this UI directly with the stored credentials; it never uses the
// API token.
const DefaultWebURL = "https://tracsis.apsissolutions.com"

// Options configures a capture.
type Options struct {
	// WebURL overrides the web UI base URL.
	WebURL string
	// OutDir is where the screenshot is written. Defaults to ./snaps.
	OutDir string
	// Debugf, when set, receives step-by-step progress lines.
	Debugf func(format string, args ...any)
}

func (o *Options) debug(format string, args ...any) {
	if o.Debugf != nil {
		o.Debugf(format, args...)
	}
}

// Capture signs in to the web UI as user, opens the task view page and
// screenshots its table element. Returns the path of the saved image.
func Capture(user, password string, taskID int, opts Options) (string, error) {
	webURL := opts.WebURL
	if webURL == "" {
		webURL = DefaultWebURL
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = "snaps"
	}

	pw, err := playwright.Run()
	if err != nil {
		return "", fmt.Errorf("starting playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args:     []string{"--no-sandbox", "--disable-dev-shm-usage"},
	})
	if err != nil {
		return "", fmt.Errorf("launching browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}

	opts.debug("signing in at %s/signin", webURL)
	if _, err := page.Goto(webURL+"/signin", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return "", fmt.Errorf("opening signin page: %w", err)
	}

	if err := page.Locator("input#email").Fill(user); err != nil {
		return "", fmt.Errorf("filling email: %w", err)
	}
	if err := page.Locator("input#password").Fill(password); err != nil {
		return "", fmt.Errorf("filling password: %w", err)
	}
	if err := page.Locator("button[type='submit']").Click(); err != nil {
		return "", fmt.Errorf("submitting login form: %w", err)
	}

	// Signed in once the browser leaves /signin.
	leftSignin := func(url string) bool { return !strings.Contains(url, "/signin") }
	if err := page.WaitForURL(leftSignin, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10_000),
	}); err != nil {
		return "", fmt.Errorf("web login did not complete: %w", err)
	}
	opts.debug("signed in, opening task %d", taskID)

	taskURL := fmt.Sprintf("%s/pts/my-task/tasks/view/%d?parent=my-task", webURL, taskID)
	if _, err := page.Goto(taskURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return "", fmt.Errorf("opening task page: %w", err)
	}

	table := page.Locator(".ant-table-container")
	if err := table.WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(25_000),
	}); err != nil {
		return "", fmt.Errorf("task table did not appear: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(outDir, fmt.Sprintf("task_%d_screenshot.png", taskID))

	if _, err := page.Locator(".ant-table").Screenshot(playwright.LocatorScreenshotOptions{
		Path: playwright.String(path),
	}); err != nil {
		return "", fmt.Errorf("taking screenshot: %w", err)
	}
	opts.debug("screenshot saved to %s", path)

	return path, nil
}
