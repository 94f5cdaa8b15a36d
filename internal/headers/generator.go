package headers

import (
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"sync"

	http "github.com/bogdanfinn/fhttp"
)

type viewport struct {
	Width      int
	Height     int
	PixelRatio float64
}

type Profile struct {
	ua           string
	secCHUA      string
	platform     string
	mobile       bool
	viewport     viewport
	acceptIdx    int
	langIdx      int
	encIdx       int
	cacheIdx     int
	viewportProb []float64
}

var (
	acceptOpts = []string{
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
		"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	}
	encOpts = []string{
		"gzip, deflate, br",
		"gzip, deflate, br, zstd",
	}
	langOpts = []string{
		"en-US,en;q=0.9",
		"en-US,en;q=0.8",
		"en-GB,en;q=0.9,en-US;q=0.8",
		"en-IN,en;q=0.9,hi;q=0.8",
		"en-US,en;q=0.9,es;q=0.8",
		"en-US",
	}
	cacheOpts = []string{
		"max-age=0",
		"no-cache",
		"",
	}

	headerOrder = []string{
		"Accept",
		"Accept-Language",
		"Accept-Encoding",
		"User-Agent",
		"Sec-CH-UA",
		"Sec-CH-UA-Mobile",
		"Sec-CH-UA-Platform",
		"Sec-Fetch-Site",
		"Sec-Fetch-Mode",
		"Sec-Fetch-Dest",
		"Sec-Fetch-User",
		"Sec-CH-Viewport-Width",
		"Sec-CH-DPR",
		"Upgrade-Insecure-Requests",
		"Cache-Control",
		"Referer",
		"Priority",
	}
)

var profilePool = sync.Pool{
	New: func() interface{} {
		return generateProfile()
	},
}

func generateDesktopViewport() viewport {
	widths := []int{1280, 1366, 1440, 1536, 1920}
	heights := []int{720, 768, 800, 900, 1080}
	dprChoices := []float64{1, 1.25, 1.5, 2}
	return viewport{
		Width:      widths[rand.Intn(len(widths))],
		Height:     heights[rand.Intn(len(heights))],
		PixelRatio: dprChoices[rand.Intn(len(dprChoices))],
	}
}

func generateMobileViewport() viewport {
	w := rand.Intn(80) + 360
	h := rand.Intn(276) + 640
	dprChoices := []float64{2, 2.5, 3}
	return viewport{Width: w, Height: h, PixelRatio: dprChoices[rand.Intn(len(dprChoices))]}
}

func generateRandomUA() (ua, platform string, mobile bool) {
	chromeMaj := rand.Intn(11) + 126
	switch rand.Intn(4) {
	case 0: // Windows Chrome
		return fmt.Sprintf(
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) "+
				"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36",
			chromeMaj,
		), "Windows", false
	case 1: // macOS Chrome
		return fmt.Sprintf(
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) "+
				"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36",
			chromeMaj,
		), "macOS", false
	case 2: // Android Chrome
		androidVer := rand.Intn(6) + 10
		return fmt.Sprintf(
			"Mozilla/5.0 (Linux; Android %d; SM-G%03d) "+
				"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Mobile Safari/537.36",
			androidVer, rand.Intn(80)+900, chromeMaj,
		), "Android", true
	default: // iOS Safari
		maj := rand.Intn(4) + 15
		min := rand.Intn(7)
		return fmt.Sprintf(
			"Mozilla/5.0 (iPhone; CPU iPhone OS %d_%d like Mac OS X) "+
				"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/%d.%d Mobile/15E148 Safari/604.1",
			maj, min, maj, min,
		), "iOS", true
	}
}

func generateSecCHUA(ua string) string {
	const fallback = "126.0.0.0"
	ver := fallback
	if idx := strings.Index(ua, "Chrome/"); idx != -1 {
		rest := ua[idx+7:]
		if j := strings.Index(rest, " "); j != -1 {
			ver = rest[:j]
		} else {
			ver = rest
		}
	}
	return fmt.Sprintf(
		`"Not:A-Brand";v="24", "Chromium";v="%s", "Google Chrome";v="%s"`,
		ver, ver,
	)
}

func generateProfile() Profile {
	ua, platform, mobile := generateRandomUA()

	vp := generateDesktopViewport()
	if mobile {
		vp = generateMobileViewport()
	}

	viewportProbs := make([]float64, 2)
	for i := range viewportProbs {
		viewportProbs[i] = rand.Float64()
	}

	return Profile{
		ua:           ua,
		secCHUA:      generateSecCHUA(ua),
		platform:     platform,
		mobile:       mobile,
		viewport:     vp,
		acceptIdx:    rand.Intn(len(acceptOpts)),
		langIdx:      rand.Intn(len(langOpts)),
		encIdx:       rand.Intn(len(encOpts)),
		cacheIdx:     rand.Intn(len(cacheOpts)),
		viewportProb: viewportProbs,
	}
}

// ForPage builds a browser-like header set for a direct navigation to a
// product page. The Referer points at the page's own origin, consistent
// with a shopper clicking through the store.
func ForPage(pageURL string) http.Header {
	profile := profilePool.Get().(Profile)
	defer profilePool.Put(profile)

	h := http.Header{}
	h.Set("Accept", acceptOpts[profile.acceptIdx])
	h.Set("Accept-Language", langOpts[profile.langIdx])
	h.Set("Accept-Encoding", encOpts[profile.encIdx])
	h.Set("User-Agent", profile.ua)
	h.Set("Sec-CH-UA", profile.secCHUA)
	if profile.mobile {
		h.Set("Sec-CH-UA-Mobile", "?1")
	} else {
		h.Set("Sec-CH-UA-Mobile", "?0")
	}
	h.Set("Sec-CH-UA-Platform", `"`+profile.platform+`"`)
	h.Set("Sec-Fetch-Site", "same-origin")
	h.Set("Sec-Fetch-Mode", "navigate")
	h.Set("Sec-Fetch-Dest", "document")
	h.Set("Sec-Fetch-User", "?1")
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Priority", "u=0, i")

	if link, err := url.Parse(pageURL); err == nil && link.Host != "" {
		h.Set("Referer", link.Scheme+"://"+link.Host+"/")
	}

	if cc := cacheOpts[profile.cacheIdx]; cc != "" {
		h.Set("Cache-Control", cc)
	}

	if profile.viewportProb[0] < 0.7 {
		h.Set("Sec-CH-Viewport-Width", strconv.Itoa(profile.viewport.Width))
	}
	if profile.viewportProb[1] < 0.7 {
		h.Set("Sec-CH-DPR", fmt.Sprintf("%.1f", profile.viewport.PixelRatio))
	}

	h[http.HeaderOrderKey] = headerOrder

	return h
}

// InitProfilePool pre-generates header profiles so early requests don't
// all share the sync.Pool's lazily created first profile.
func InitProfilePool(count int) {
	profiles := make([]interface{}, count)
	for i := 0; i < count; i++ {
		profiles[i] = generateProfile()
	}
	for _, profile := range profiles {
		profilePool.Put(profile)
	}
}
