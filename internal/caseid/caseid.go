// Package caseid генерирует идентификаторы дел.
package caseid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const prefix = "DC"

var idPattern = regexp.MustCompile(`^DC-\d{8}-[0-9a-f]{6}-[0-9a-f]{6}$`)

// New возвращает идентификатор дела вида DC-YYYYMMDD-cccccc-rrrrrr, где cccccc —
// стабильный хеш идентичности клиента, а rrrrrr — случайный суффикс. Суффикс
// исключает коллизии при одновременных заявках одного клиента в один день.
func New(createdAt time.Time, clientEmail string) string {
	identity := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(clientEmail))))

	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		nano := createdAt.UnixNano()
		suffix = []byte{byte(nano), byte(nano >> 8), byte(nano >> 16)}
	}

	return fmt.Sprintf("%s-%s-%s-%s",
		prefix,
		createdAt.Format("20060102"),
		hex.EncodeToString(identity[:3]),
		hex.EncodeToString(suffix),
	)
}

// Valid сообщает, соответствует ли строка формату идентификатора дела.
func Valid(id string) bool {
	return idPattern.MatchString(id)
}
