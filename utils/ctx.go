package utils

import (
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/gin-gonic/gin"
)

const PrincipalKey = "principal"

// Principal returns the authenticated caller set by the auth middleware,
// or nil.
func Principal(c *gin.Context) *entity.User {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	u, ok := v.(*entity.User)
	if !ok {
		return nil
	}
	return u
}
