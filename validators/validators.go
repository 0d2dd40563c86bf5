// Package validators normalizes untrusted request input before it reaches
// the repositories. Every function either returns the normalized value or
// fails fast with a *models.APIError; none of them touch the database.
package validators

import (
	"math"
	"strconv"
	"strings"

	"nc-news-api/models"
)

// sortColumns is the closed set of columns a client may sort articles by.
// The sort column is the one piece of user input that ends up in query
// structure rather than a bound parameter, so membership here is mandatory.
var sortColumns = map[string]bool{
	"article_id":    true,
	"title":         true,
	"author":        true,
	"body":          true,
	"topic":         true,
	"created_at":    true,
	"votes":         true,
	"comment_count": true,
}

// ValidateID parses raw as a base-10 integer id. Ids must be >= 1: the rule
// applies uniformly to every operation, including fetches. field names the
// path parameter for the error message ("article_id", "comment_id").
func ValidateID(raw, field string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 1 {
		return 0, models.InvalidIdentifier("Invalid " + field)
	}
	return id, nil
}

// ValidateIncVotes checks the inc_votes payload value. JSON numbers decode
// to float64; only integral values are accepted since votes is an integer
// column. No range bound in either direction.
func ValidateIncVotes(raw interface{}) (int, error) {
	if raw == nil {
		return 0, models.InvalidField("Missing inc_votes in request body")
	}
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, models.InvalidField("inc_votes must be a number")
	}
	return int(f), nil
}

func ValidateUsername(raw interface{}) (string, error) {
	if raw == nil {
		return "", models.InvalidField("Missing username or body in request body")
	}
	username, ok := raw.(string)
	if !ok {
		return "", models.InvalidField("username must be a string")
	}
	return username, nil
}

// ValidateCommentBody rejects a missing, non-string or whitespace-only body.
// The original, untrimmed string is returned on success.
func ValidateCommentBody(raw interface{}) (string, error) {
	if raw == nil {
		return "", models.InvalidField("Missing username or body in request body")
	}
	body, ok := raw.(string)
	if !ok {
		return "", models.InvalidField("body must be a string")
	}
	if strings.TrimSpace(body) == "" {
		return "", models.EmptyBody("Comment body cannot be empty")
	}
	return body, nil
}

// ValidateSortAndOrder checks sortBy against the column whitelist and order
// against asc/desc (case-insensitive). Empty values default to created_at
// and desc.
func ValidateSortAndOrder(sortBy, order string) (string, string, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "desc"
	}
	order = strings.ToLower(order)

	if !sortColumns[sortBy] || (order != "asc" && order != "desc") {
		return "", "", models.InvalidField("Invalid sort_by or order query parameter")
	}
	return sortBy, order, nil
}

// ValidateFilterValue rejects a filter that was supplied but left empty
// (e.g. "?topic="). An absent filter (nil) is a no-op.
func ValidateFilterValue(name string, value *string) error {
	if value != nil && *value == "" {
		return models.InvalidField("Missing value for " + name + " query")
	}
	return nil
}

// ValidatePagination parses limit and page query values, defaulting to 10
// and 1 when absent. Both must be integers >= 1 when present.
func ValidatePagination(limitRaw, pageRaw string) (int, int, error) {
	limit, page := 10, 1

	if limitRaw != "" {
		n, err := strconv.Atoi(limitRaw)
		if err != nil || n < 1 {
			return 0, 0, models.InvalidField("Invalid limit or page query parameter")
		}
		limit = n
	}
	if pageRaw != "" {
		n, err := strconv.Atoi(pageRaw)
		if err != nil || n < 1 {
			return 0, 0, models.InvalidField("Invalid limit or page query parameter")
		}
		page = n
	}
	return limit, page, nil
}
