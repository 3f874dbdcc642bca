// Package browser manages the Chrome session handle an agent run drives.
// It only launches or attaches to a browser; navigation and action
// execution belong to the agent engine.
package browser

import (
	"context"
	"fmt"

	cdpbrowser "github.com/chromedp/cdproto/browser"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	product     string
	logger      *zap.Logger
}

type Options struct {
	// RunHeadful shows the browser window instead of running headless.
	RunHeadful bool
	// ChromePath launches a specific Chrome executable, e.g. the user's own
	// installation, instead of the default discovery.
	ChromePath string
	// RemoteDebuggingURL attaches to an already-running Chrome instance
	// instead of launching one. ChromePath is ignored when set.
	RemoteDebuggingURL string
	// AttemptToDisableAutomationMessage hides the "Chrome is being
	// controlled by automated software" banner.
	AttemptToDisableAutomationMessage bool
}

// NewSession starts (or attaches to) a Chrome instance and verifies it
// responds to the DevTools protocol before returning.
func NewSession(ctx context.Context, options *Options, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if options == nil {
		options = &Options{}
	}
	var parentCtx context.Context
	var allocCancel context.CancelFunc
	if options.RemoteDebuggingURL != "" {
		parentCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, options.RemoteDebuggingURL)
	} else {
		ops := chromedp.DefaultExecAllocatorOptions[:]
		if options.RunHeadful {
			ops = append(ops, chromedp.Flag("headless", false))
		}
		if options.ChromePath != "" {
			ops = append(ops, chromedp.ExecPath(options.ChromePath))
		}
		if options.AttemptToDisableAutomationMessage {
			ops = append(ops, chromedp.Flag("enable-automation", false))
		}
		parentCtx, allocCancel = chromedp.NewExecAllocator(ctx, ops...)
	}
	browserCtx, cancel := chromedp.NewContext(parentCtx)
	session := &Session{
		ctx:         browserCtx,
		cancel:      cancel,
		allocCancel: allocCancel,
		logger:      logger,
	}
	if err := session.handshake(); err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to establish browser session: %w", err)
	}
	logger.Info("browser session established",
		zap.String("product", session.product),
		zap.Bool("headful", options.RunHeadful),
		zap.Bool("remote", options.RemoteDebuggingURL != ""),
	)
	return session, nil
}

// handshake starts the browser and asks it for its version over the
// DevTools protocol, confirming the session is usable.
func (s *Session) handshake() error {
	return chromedp.Run(s.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, product, _, _, _, err := cdpbrowser.GetVersion().Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to get browser version: %w", err)
		}
		s.product = product
		return nil
	}))
}

// Context exposes the chromedp context the agent engine drives. The engine
// owns everything that happens inside it.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Product is the browser name and version reported at handshake.
func (s *Session) Product() string {
	return s.product
}

func (s *Session) Close() {
	s.cancel()
	if s.allocCancel != nil {
		s.allocCancel()
	}
}
