package handler

import (
	"encoding/json"
	"slices"
	"strconv"

	"ncnews/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgBadRequest   = "Bad Request"
	msgUnknownField = "Bad request"
)

func badRequest(cause error) error {
	return apperr.Wrap(apperr.KindBadInput, msgBadRequest, cause)
}

// pathID parses an integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, badRequest(err)
	}
	return id, nil
}

// bindStrict decodes a JSON object into dst, rejecting keys outside allowed
// before running the binding validators.
func bindStrict(c *gin.Context, allowed []string, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return badRequest(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return badRequest(err)
	}
	for key := range fields {
		if !slices.Contains(allowed, key) {
			return apperr.UnknownField(msgUnknownField)
		}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return badRequest(err)
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return badRequest(err)
	}
	return nil
}

// bindVote binds {inc_votes:int}; a missing or non-integer value is bad input.
func bindVote(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return badRequest(err)
	}
	return nil
}
