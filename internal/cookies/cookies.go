// Package cookies exports browser cookies into the Netscape file format
// the download engine accepts.
package cookies

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"fetcharr/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Register all kooky browser backends:
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

// cookieStore is the slice of kooky's store API this package needs.
type cookieStore interface {
	Browser() string
	ReadCookies(filters ...kooky.Filter) ([]*kooky.Cookie, error)
}

// ExportForURL reads valid browser cookies for rawURL's base domain and
// writes them to a Netscape cookie file under destDir. browser selects
// the store to read ("firefox", "chrome", ...); "all" or "" reads every
// installed browser. Returns "" with a nil error when no cookies match.
func ExportForURL(ctx context.Context, rawURL, browser, destDir string) (string, error) {
	domain, err := baseDomain(rawURL)
	if err != nil {
		return "", fmt.Errorf("error extracting base domain in cookie grab: %w", err)
	}

	allStores := kooky.FindAllCookieStores()
	stores := make([]cookieStore, 0, len(allStores))
	for _, s := range allStores {
		stores = append(stores, s)
	}

	kookyCookies := readStores(ctx, stores, browser, domain)
	if len(kookyCookies) == 0 {
		logging.I("No browser cookies found for %s (browser filter %q)", domain, browser)
		return "", nil
	}
	logging.I("Found %d browser cookies for %s", len(kookyCookies), domain)

	path := filepath.Join(destDir, "cookies-"+domain+".txt")
	if err := saveCookiesToFile(convertToHTTPCookies(kookyCookies), domain, path); err != nil {
		return "", err
	}
	return path, nil
}

// readStores collects valid cookies for domain from every store whose
// browser matches the filter ("all" or "" matches every store).
// Unreadable stores are skipped.
func readStores(ctx context.Context, stores []cookieStore, browser, domain string) []*kooky.Cookie {
	matchAll := browser == "" || strings.EqualFold(browser, "all")

	var out []*kooky.Cookie
	for _, store := range stores {
		if ctx.Err() != nil {
			return out
		}
		if !matchAll && !strings.EqualFold(store.Browser(), browser) {
			logging.D(2, "Skipping %s cookie store (filter %q)", store.Browser(), browser)
			continue
		}

		cookies, err := store.ReadCookies(kooky.Valid, kooky.Domain(domain))
		if err != nil {
			logging.D(1, "Failed to read cookies from %s: %v", store.Browser(), err)
			continue
		}
		out = append(out, cookies...)
	}
	return out
}

// baseDomain derives the effective TLD+1 for a URL.
func baseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return publicsuffix.EffectiveTLDPlusOne(u.Hostname())
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		}
	}
	return httpCookies
}

// saveCookiesToFile saves the cookies to a file in Netscape format.
func saveCookiesToFile(cookies []*http.Cookie, fallbackDomain, cookieFilePath string) error {
	file, err := os.Create(cookieFilePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.E("failed to close file %q due to error: %v", cookieFilePath, err)
		}
	}()

	// Netscape cookie file header
	if _, err = file.WriteString("# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n"); err != nil {
		return err
	}

	logging.D(1, "Saving %d cookies to file %s...", len(cookies), cookieFilePath)

	for _, cookie := range cookies {
		domain := cookie.Domain
		if domain == "" {
			domain = fallbackDomain
		}
		if !strings.HasPrefix(domain, ".") && strings.Count(domain, ".") > 1 {
			domain = "." + domain
		}

		secure := "FALSE"
		if cookie.Secure {
			secure = "TRUE"
		}

		expires := int64(0)
		if !cookie.Expires.IsZero() {
			expires = cookie.Expires.Unix()
		}

		if _, err := fmt.Fprintf(file, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, "FALSE", cookie.Path, secure, expires, cookie.Name, cookie.Value); err != nil {
			return err
		}
	}
	return nil
}
