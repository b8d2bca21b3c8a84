package server

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

// queryDecoder is shared across requests; schema.Decoder caches struct
// metadata and is safe for concurrent use.
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	// Unknown query keys are a client error, not something to ignore:
	// silently dropping an unrecognized filter would return unfiltered
	// results the caller did not ask for.
	d.IgnoreUnknownKeys(false)
	return d
}

// DecodeQuery decodes the request's query string into dst using `schema`
// struct tags. Unknown keys and malformed values return an error suitable
// for a 400 response.
func DecodeQuery(c *fiber.Ctx, dst interface{}) error {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})

	if err := queryDecoder.Decode(dst, values); err != nil {
		return fmt.Errorf("invalid query parameters: %w", err)
	}

	return nil
}
