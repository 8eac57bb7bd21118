package badger

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/poiesic/peermatch/core"
)

// Key prefixes for different data types
const (
	profileRecordPrefix   = "prorec"
	profileEmailPrefix    = "proeml"
	embeddingRecordPrefix = "embrec"
	feedbackRecordPrefix  = "fbkrec"
	feedbackUserPrefix    = "fbkusr"
	feedbackTargetPrefix  = "fbktgt"
	feedbackIDSeq         = "fbkrecseq"
	weightsRecordPrefix   = "wgtrec"
)

// makeProfileKey generates a key for a profile by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", profileRecordPrefix, id))
}

// makeEmailKey generates a key for the email index.
// The address is lower-cased so lookups are case-insensitive.
func makeEmailKey(email string) []byte {
	return []byte(fmt.Sprintf("%s:%s", profileEmailPrefix, strings.ToLower(strings.TrimSpace(email))))
}

// makeEmbeddingKey generates a key for an embedding record by profile ID.
func makeEmbeddingKey(profileID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", embeddingRecordPrefix, profileID))
}

// makeFeedbackKey generates a key for a feedback event by ID.
func makeFeedbackKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s:%d", feedbackRecordPrefix, id))
}

// makeFeedbackUserKey generates a composite key for the by-user index.
// Format: prefix:userID:eventID
func makeFeedbackUserKey(userID core.ID, eventID uint64) []byte {
	prefix := feedbackUserPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for userID + 8 bytes for eventID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(userID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], eventID)
	return buf
}

// makePartialFeedbackUserKey generates a partial key for by-user scans.
// Format: prefix:userID
func makePartialFeedbackUserKey(userID core.ID) []byte {
	prefix := feedbackUserPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for userID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(userID))
	return buf
}

// makeFeedbackTargetKey generates a composite key for the by-target index.
// Format: prefix:matchedUserID:eventID
func makeFeedbackTargetKey(matchedUserID core.ID, eventID uint64) []byte {
	prefix := feedbackTargetPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for matchedUserID + 8 bytes for eventID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(matchedUserID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], eventID)
	return buf
}

// makePartialFeedbackTargetKey generates a partial key for by-target scans.
// Format: prefix:matchedUserID
func makePartialFeedbackTargetKey(matchedUserID core.ID) []byte {
	prefix := feedbackTargetPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for matchedUserID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(matchedUserID))
	return buf
}

// makeWeightsKey generates a key for a user's feature weights.
func makeWeightsKey(userID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", weightsRecordPrefix, userID))
}

// makeCheckpointKey generates a key for processor checkpoints.
func makeCheckpointKey(processorType string) []byte {
	return []byte(fmt.Sprintf("%s:chkpt", processorType))
}
