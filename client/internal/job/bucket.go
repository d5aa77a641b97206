package job

import (
	"fmt"
	"hash/fnv"
)

// BucketLabel hashes key (an rfid) to a stable label in 0..31 so metric
// cardinality stays bounded. Buckets are for metrics only; they do not
// decide where a job runs.
func BucketLabel(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return fmt.Sprintf("%d", h.Sum32()%32)
}
