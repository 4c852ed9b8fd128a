// File: utils/constants.go
package utils

// TokenCachePrefix is the prefix used for Redis credential cache keys.
const TokenCachePrefix = "gtoken:"
