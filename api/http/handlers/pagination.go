package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// page reads ?limit and ?offset. Absent values take defaults; malformed or
// out-of-range values are reported per field.
func page(c *fiber.Ctx) (limit, offset int, fields map[string][]string) {
	limit = defaultPageSize
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxPageSize {
			fields = addField(fields, "limit", "must be an integer between 1 and "+strconv.Itoa(maxPageSize))
		} else {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fields = addField(fields, "offset", "must be a non-negative integer")
		} else {
			offset = n
		}
	}
	return limit, offset, fields
}

func addField(fields map[string][]string, name, msg string) map[string][]string {
	if fields == nil {
		fields = map[string][]string{}
	}
	fields[name] = append(fields[name], msg)
	return fields
}
