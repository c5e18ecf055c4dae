package adapter

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/utils"
)

const (
	mainlandSalt = "xV8v4Qu54lUKrEYFZkJhB8cuOh9Asafs"
	globalSalt   = "6s25p5ox5y14umn1p61aqyyvbvvl3lrt"

	globalRandomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	globalRandomLen      = 6

	mainlandRandomMin = 100001
	mainlandRandomMax = 200000
)

// dynamicSecret produces the DS header. now and intn are injectable so the
// output is reproducible in tests.
type dynamicSecret struct {
	now  func() time.Time
	intn func(n int) int
}

func newDynamicSecret() *dynamicSecret {
	return &dynamicSecret{now: time.Now, intn: rand.IntN}
}

// mainland signs the body and the sorted query string:
// "t,r," + md5("salt=S&t=T&r=R&b=B&q=Q") with r in [100001, 200000).
func (d *dynamicSecret) mainland(body, query string) string {
	t := d.now().Unix()
	r := mainlandRandomMin + d.intn(mainlandRandomMax-mainlandRandomMin)

	check := utils.MD5Hex(fmt.Sprintf("salt=%s&t=%d&r=%d&b=%s&q=%s", mainlandSalt, t, r, body, query))
	return strconv.FormatInt(t, 10) + "," + strconv.Itoa(r) + "," + check
}

// global signs only the timestamp and a 6 char [a-z0-9] random string:
// "t,r," + md5("salt=S&t=T&r=R").
func (d *dynamicSecret) global() string {
	t := d.now().Unix()

	r := make([]byte, globalRandomLen)
	for i := range r {
		r[i] = globalRandomAlphabet[d.intn(len(globalRandomAlphabet))]
	}

	check := utils.MD5Hex(fmt.Sprintf("salt=%s&t=%d&r=%s", globalSalt, t, r))
	return strconv.FormatInt(t, 10) + "," + string(r) + "," + check
}
