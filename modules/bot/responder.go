package bot

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"kursbot/commontypes"
	"kursbot/modules/currency"
	"kursbot/modules/rates"
	"kursbot/modules/settings"
)

const amountLimit = 1e100

// Responder implements the conversion module: it parses incoming messages
// into conversion requests and prices them against the current rate table.
type Responder struct {
	table     *currency.Table
	extractor *currency.Extractor
	rates     rates.Supplier
	store     settings.Store
}

func NewResponder(table *currency.Table, extractor *currency.Extractor, supplier rates.Supplier, store settings.Store) *Responder {
	return &Responder{
		table:     table,
		extractor: extractor,
		rates:     supplier,
		store:     store,
	}
}

func (r *Responder) Name() string {
	return "currency"
}

type request struct {
	amount float64
	code   string
	text   string
}

func (r *Responder) HandleMessage(ctx context.Context, msg commontypes.Message) ([]commontypes.Reply, error) {
	text := strings.TrimSpace(msg.Text)
	if text == "" || strings.HasPrefix(text, "/") {
		return nil, nil
	}

	prefs, err := r.store.Get(ctx, msg.ChatID)
	if err != nil {
		logrus.Warnf("settings lookup failed for chat %d, using defaults: %v", msg.ChatID, err)
		prefs = settings.Defaults(msg.ChatID)
	}
	strs := Localize(prefs.Language)

	var requests []request
	for _, part := range SplitRequests(text) {
		if amount, code, ok := r.extractor.Extract(part); ok {
			requests = append(requests, request{amount: amount, code: code, text: part})
		}
	}

	if len(requests) == 0 {
		if wantsHelp(text, prefs.Language) {
			return []commontypes.Reply{{Kind: commontypes.ReplyHint, Text: strs.Hint}}, nil
		}
		return nil, nil
	}

	table, err := r.rates.Rates(ctx)
	if err != nil {
		logrus.Errorf("rates unavailable: %v", err)
		return []commontypes.Reply{{Kind: commontypes.ReplyError, Text: strs.Error}}, nil
	}

	if len(requests) == 1 {
		return r.replySingle(requests[0], prefs, strs, table)
	}
	return r.replyMultiple(requests, prefs, strs, table)
}

func (r *Responder) replySingle(req request, prefs settings.Settings, strs Strings, table currency.RateTable) ([]commontypes.Reply, error) {
	if req.amount <= 0 {
		return []commontypes.Reply{{Kind: commontypes.ReplyError, Text: strs.NegativeAmount}}, nil
	}

	if target, ok := r.findTargetCurrency(req.text, req.code); ok {
		converted, err := currency.Convert(req.amount, req.code, target, table)
		if err != nil {
			logrus.Warnf("targeted conversion %s -> %s failed: %v", req.code, target, err)
			return []commontypes.Reply{{Kind: commontypes.ReplyError, Text: strs.Error}}, nil
		}
		text := fmt.Sprintf("%s %s\n= %s %s",
			currency.FormatNumber(req.amount, currency.FormatOptions{OriginalAmount: true}), req.code,
			currency.FormatNumber(converted, currency.FormatOptions{Crypto: r.table.IsCrypto(target)}), target,
		)
		return []commontypes.Reply{{Kind: commontypes.ReplyConversion, Text: text}}, nil
	}

	block := r.buildBlock(req, prefs, strs, table)
	if block == "" {
		return nil, nil
	}
	return []commontypes.Reply{{Kind: commontypes.ReplyConversion, Text: block}}, nil
}

func (r *Responder) replyMultiple(requests []request, prefs settings.Settings, strs Strings, table currency.RateTable) ([]commontypes.Reply, error) {
	var blocks []string
	for _, req := range requests {
		if req.amount <= 0 || req.amount > amountLimit {
			continue
		}
		if block := r.buildBlock(req, prefs, strs, table); block != "" {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return nil, nil
	}
	return []commontypes.Reply{{Kind: commontypes.ReplyConversion, Text: strings.Join(blocks, "\n\n")}}, nil
}

// buildBlock renders one request into the fiat and crypto sections using a
// single rate table snapshot. Currencies whose rate is missing or invalid
// are skipped rather than failing the whole response.
func (r *Responder) buildBlock(req request, prefs settings.Settings, strs Strings, table currency.RateTable) string {
	var sections []string

	if lines := r.convertAll(req, prefs.Fiat, false, table); len(lines) > 0 {
		sections = append(sections, strs.FiatHeader+"\n"+strings.Join(lines, "\n"))
	}
	if lines := r.convertAll(req, prefs.Crypto, true, table); len(lines) > 0 {
		sections = append(sections, strs.CryptoHeader+"\n"+strings.Join(lines, "\n"))
	}
	if len(sections) == 0 {
		return ""
	}

	content := strings.Join(sections, "\n\n")
	if prefs.UseQuote {
		content = "<blockquote expandable>" + content + "</blockquote>"
	}

	header := currency.FormatNumber(req.amount, currency.FormatOptions{OriginalAmount: true}) + " " + req.code
	return header + "\n" + content
}

func (r *Responder) convertAll(req request, targets []string, crypto bool, table currency.RateTable) []string {
	var lines []string
	for _, to := range targets {
		if to == req.code {
			continue
		}
		converted, err := currency.Convert(req.amount, req.code, to, table)
		if err != nil {
			continue
		}
		formatted := currency.FormatNumber(converted, currency.FormatOptions{Crypto: crypto})
		lines = append(lines, formatted+" "+to)
	}
	return lines
}

var (
	tokenSplitRegex   = regexp.MustCompile(`[\s,]+`)
	numericTokenRegex = regexp.MustCompile(`^[\d.,+\-*/()^×÷:хk]+$`)
)

// findTargetCurrency reports whether the text names exactly one currency
// besides the source, as in "100 USD EUR".
func (r *Responder) findTargetCurrency(text, from string) (string, bool) {
	var found []string
	for _, token := range tokenSplitRegex.Split(strings.TrimSpace(text), -1) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" || numericTokenRegex.MatchString(token) {
			continue
		}
		code, ok := r.table.Resolve(token)
		if !ok || code == from {
			continue
		}
		duplicate := false
		for _, f := range found {
			if f == code {
				duplicate = true
				break
			}
		}
		if !duplicate {
			found = append(found, code)
		}
	}
	if len(found) == 1 {
		return found[0], true
	}
	return "", false
}

func wantsHelp(text, lang string) bool {
	hasDigit := strings.ContainsFunc(text, func(r rune) bool { return r >= '0' && r <= '9' })
	if !hasDigit {
		return false
	}
	words, ok := triggerWords[lang]
	if !ok {
		words = triggerWords["en"]
	}
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
