package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/service"
)

// legacyAliases maps the camelCase and historical field names older clients
// send onto the canonical snake_case keys.
var legacyAliases = map[string]string{
	"workStation":      "workstation",
	"shiftNumber":      "shift_number",
	"halfDollars":      "half_dollars",
	"startingCash":     "starting_cash",
	"drawerEntryId":    "drawer_entry_id",
	"drawer_entry":     "drawer_entry_id",
	"wsLabelAmount":    "ws_label_amount",
	"ignoreReason":     "ignore_reason",
	"draftId":          "draft_id",
	"isReconciled":     "is_reconciled",
	"adminCountAmount": "admin_count_amount",
	"cashDropIds":      "cash_drop_ids",
	"batchNumber":      "batch_number",
	"batchNumbers":     "batch_numbers",
}

// payload is a request body with canonical keys. Values are strings from
// multipart forms, or json.Number, bool, string, []any and map[string]any
// from JSON.
type payload map[string]any

// normalize rewrites legacy keys in place. A canonical key that is already
// present wins over its alias.
func (p payload) normalize() payload {
	for alias, canonical := range legacyAliases {
		v, ok := p[alias]
		if !ok {
			continue
		}
		if _, exists := p[canonical]; !exists {
			p[canonical] = v
		}
		delete(p, alias)
	}
	return p
}

// decodePayload reads a JSON or multipart body. A label_image file part is
// returned as an upload when allowLabel is set.
func (s *Server) decodePayload(w http.ResponseWriter, r *http.Request, allowLabel bool) (payload, *service.LabelUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return s.decodeMultipart(r, allowLabel)
	}

	p := payload{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, domain.Validationf("Invalid JSON body")
	}
	return p.normalize(), nil, nil
}

func (s *Server) decodeMultipart(r *http.Request, allowLabel bool) (payload, *service.LabelUpload, error) {
	if err := r.ParseMultipartForm(s.opts.MaxUploadBytes); err != nil {
		return nil, nil, domain.Validationf("Failed to parse form")
	}
	p := payload{}
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			p[key] = values[0]
		}
	}
	p.normalize()

	if !allowLabel {
		return p, nil, nil
	}
	label, err := s.readLabelUpload(r)
	if err != nil {
		return nil, nil, err
	}
	return p, label, nil
}

func (p payload) has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

func (p payload) str(key string) string {
	switch v := p[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// optString returns nil when key is absent.
func (p payload) optString(key string) *string {
	if !p.has(key) {
		return nil
	}
	s := p.str(key)
	return &s
}

func (p payload) integer(key string) (int, error) {
	if !p.has(key) || p.str(key) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(p.str(key))
	if err != nil {
		return 0, domain.Validationf("%s must be a whole number", key)
	}
	return n, nil
}

// optInt64 returns nil when key is absent, null or empty.
func (p payload) optInt64(key string) (*int64, error) {
	if !p.has(key) || p.str(key) == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(p.str(key), 10, 64)
	if err != nil || n <= 0 {
		return nil, domain.Validationf("%s must be a positive id", key)
	}
	return &n, nil
}

// optDecimal returns nil when key is absent, null or empty.
func (p payload) optDecimal(key string) (*decimal.Decimal, error) {
	if !p.has(key) || p.str(key) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(p.str(key))
	if err != nil {
		return nil, domain.Validationf("%s must be a decimal amount", key)
	}
	return &d, nil
}

func (p payload) optBool(key string) (*bool, error) {
	if !p.has(key) {
		return nil, nil
	}
	if b, ok := p[key].(bool); ok {
		return &b, nil
	}
	b, err := strconv.ParseBool(p.str(key))
	if err != nil {
		return nil, domain.Validationf("%s must be true or false", key)
	}
	return &b, nil
}

func (p payload) optStatus(key string) *domain.Status {
	s := p.optString(key)
	if s == nil || *s == "" {
		return nil
	}
	status := domain.Status(*s)
	return &status
}

// stringList reads an array of ids or names. Numbers are kept in their
// textual form so bad entries can be reported verbatim.
func (p payload) stringList(key string) ([]string, error) {
	if !p.has(key) {
		return nil, nil
	}
	items, ok := p[key].([]any)
	if !ok {
		if s, isString := p[key].(string); isString {
			return strings.Split(s, ","), nil
		}
		return nil, domain.Validationf("%s must be an array", key)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, payload{"v": item}.str("v"))
	}
	return out, nil
}

// object returns a nested JSON object, or nil when absent.
func (p payload) object(key string) (payload, error) {
	if !p.has(key) {
		return nil, nil
	}
	m, ok := p[key].(map[string]any)
	if !ok {
		return nil, domain.Validationf("%s must be an object", key)
	}
	return payload(m).normalize(), nil
}

// counts returns every denomination count present in p.
func (p payload) counts() (map[string]int, error) {
	counts := make(map[string]int)
	for _, denom := range domain.DenominationTable {
		if !p.has(denom.Name) {
			continue
		}
		n, err := p.integer(denom.Name)
		if err != nil {
			return nil, err
		}
		counts[denom.Name] = n
	}
	return counts, nil
}

// denominations builds a full set of counts, absent ones being zero.
func (p payload) denominations() (domain.Denominations, error) {
	var d domain.Denominations
	counts, err := p.counts()
	if err != nil {
		return d, err
	}
	for name, n := range counts {
		if err := d.Set(name, n); err != nil {
			return d, domain.Validationf("%v", err)
		}
	}
	return d, d.Validate()
}
