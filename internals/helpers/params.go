package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

// ParseID reads a positive integer route param. Params point into fasthttp's buffer,
// so the value is copied before it is kept anywhere.
func ParseID(c *fiber.Ctx, name string) (int64, error) {
	raw := utils.ImmutableString(strings.TrimSpace(c.Params(name)))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, Validation("invalid %s", name)
	}
	return id, nil
}

// QueryString returns a trimmed, copied query value.
func QueryString(c *fiber.Ctx, key string) string {
	return utils.ImmutableString(strings.TrimSpace(c.Query(key)))
}

// QueryInt64 parses an optional positive integer filter; "" yields nil.
func QueryInt64(c *fiber.Ctx, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return nil, Validation("%s must be a positive integer", key)
	}
	return &v, nil
}

// QueryBool parses an optional boolean filter; "" yields nil.
func QueryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, Validation("%s must be true or false", key)
	}
	return &v, nil
}
