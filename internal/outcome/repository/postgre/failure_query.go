package postgre

const (
	defaultListLimit = 100
	maxListLimit     = 1000

	insertFailureQuery = `
INSERT INTO propagation_failures
	(id, route, branch, identifier, base_url, event_type, error_message, retry_count, resolved, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 0, false, $8, $8)`

	listFailuresQuery = `
SELECT id, route, branch, identifier, base_url, event_type, error_message, retry_count, resolved, created_at, updated_at
FROM propagation_failures
WHERE resolved = false
ORDER BY created_at ASC
LIMIT $1 OFFSET $2`

	countFailuresQuery = `
SELECT COUNT(*) FROM propagation_failures WHERE resolved = false`

	markResolvedQuery = `
UPDATE propagation_failures
SET resolved = true, retry_count = retry_count + 1, updated_at = $2
WHERE id = $1`
)

func listLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func listOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
