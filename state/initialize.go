package state

import (
	"time"

	"github.com/google/uuid"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &LocalEnv{
		RunID: id,
		start: time.Now(),
		DefaultVignettes: map[string][]byte{
			"title-top": []byte(`<svg viewBox="0 0 500 80" xmlns="http://www.w3.org/2000/svg">
  <path d="
    M20 50 H200
    C220 15, 280 15, 300 50
    H480

    M250 50
    C235 40, 235 25, 250 15
    C265 25, 265 40, 250 50

    M230 50
    C225 55, 225 65, 230 70
    M270 50
    C275 55, 275 65, 270 70
  "
  fill="none" stroke="black" stroke-width="1"/>
</svg>`),
			"chapter-end": []byte(`<svg viewBox="0 0 240 20" xmlns="http://www.w3.org/2000/svg">
  <path d="M10 10 H90
           M150 10 H230"
        stroke="black" stroke-width="1"/>
  <path d="M120 3 A7 7 0 1 1 119.9 3" fill="none" stroke="black" stroke-width="1"/>
</svg>`),
			"section-end": []byte(`<svg viewBox="0 0 200 20" xmlns="http://www.w3.org/2000/svg">
  <path d="M50 10
           C65 0 85 0 100 10
           C85 20 65 20 50 10
           M100 10
           C115 0 135 0 150 10
           C135 20 115 20 100 10"
        stroke="black" fill="none" stroke-width="1.3"/>
</svg>`),
		},
	}
}
