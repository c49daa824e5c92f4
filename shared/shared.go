package shared

import (
	"context"
	"strings"

	"luxeroom/shared/constant"
	"luxeroom/shared/failure"
)

// BuildCacheKey joins key segments with the ':' separator used across the
// Redis keyspace.
func BuildCacheKey(segments ...string) string {
	return strings.Join(segments, ":")
}

// StaffFromContext returns the authenticated staff session placed on the
// context by the auth middleware. Mutations require it; reads do not.
func StaffFromContext(ctx context.Context) (staffID, staffName string, err error) {
	staffID, _ = ctx.Value(constant.ContextKeyStaffID).(string)
	staffName, _ = ctx.Value(constant.ContextKeyStaffName).(string)

	if staffID == "" || staffName == "" {
		return "", "", failure.Unauthenticated("staff login required") //nolint:wrapcheck
	}

	return staffID, staffName, nil
}
