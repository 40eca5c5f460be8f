package controller

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPage = 1
	maxLimit    = 200
	maxIDList   = 500
)

// parsePageLimit reads page and limit from the query. A zero limit means the
// command's configured default.
func parsePageLimit(q url.Values) (page, limit int, err error) {
	page = defaultPage

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return 0, 0, fmt.Errorf("invalid page value [%d]", p)
		}
		page = int(p)
	}

	if q.Has("limit") {
		l, err := strconv.ParseInt(q.Get("limit"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse limit from query: %w", err)
		}
		if l > maxLimit {
			return 0, 0, fmt.Errorf("limit [%d] exceeds maximum [%d]", l, maxLimit)
		}
		if l < 1 {
			return 0, 0, fmt.Errorf("invalid limit value [%d]", l)
		}
		limit = int(l)
	}

	return page, limit, nil
}

// parseIDList splits a comma separated query parameter, dropping empty
// entries.
func parseIDList(q url.Values, name string) ([]string, error) {
	if !q.Has(name) {
		return nil, nil
	}

	var ids []string
	for id := range strings.SplitSeq(q.Get(name), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) > maxIDList {
		return nil, fmt.Errorf("%s lists [%d] ids, exceeding maximum [%d]", name, len(ids), maxIDList)
	}
	return ids, nil
}

func parseOptionalFloat(q url.Values, name string) (*float64, error) {
	if !q.Has(name) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(q.Get(name), 64)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s from query: %w", name, err)
	}
	return &v, nil
}

func parseOptionalBool(q url.Values, name string) (*bool, error) {
	if !q.Has(name) {
		return nil, nil
	}
	v, err := strconv.ParseBool(q.Get(name))
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s from query: %w", name, err)
	}
	return &v, nil
}
