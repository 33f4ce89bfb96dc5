/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"fmt"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/rafflehouse/goapi/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type impl struct {
	pfx    string
	tags   []string
	client *statsd.Client
}

// New creates a metric client with package name as prefix. When no statsd
// agent is configured the client stays nil and every bump becomes a no-op.
func New(pkgName string) Service {
	tags := []string{
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}

	var client *statsd.Client
	if addr := viper.GetString("statsd.address"); addr != "" {
		var err error
		if client, err = statsd.New(addr, statsd.WithoutTelemetry()); err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("statsd dial failed, metrics disabled")
			client = nil
		}
	}

	return &impl{pfx: pkgName + ".", tags: tags, client: client}
}

func (im *impl) merge(tags []string) []string {
	res := append([]string{}, im.tags...)
	for i := 0; i+1 < len(tags); i += 2 {
		res = append(res, fmt.Sprintf("%s:%s", tags[i], tags[i+1]))
	}
	return res
}

func (im *impl) BumpAvg(key string, val float64, tags ...string) {
	if im.client == nil {
		return
	}
	im.client.Gauge(im.pfx+key, val, im.merge(tags), 1)
}

func (im *impl) BumpSum(key string, val float64, tags ...string) {
	if im.client == nil {
		return
	}
	im.client.Count(im.pfx+key, int64(val), im.merge(tags), 1)
}

func (im *impl) BumpHistogram(key string, val float64, tags ...string) {
	if im.client == nil {
		return
	}
	im.client.Histogram(im.pfx+key, val, im.merge(tags), 1)
}

type timer struct {
	im    *impl
	key   string
	tags  []string
	start time.Time
}

func (t *timer) End() {
	if t.im.client == nil {
		return
	}
	elapsed := time.Since(t.start)
	t.im.client.Timing(t.im.pfx+t.key, elapsed, t.im.merge(t.tags), 1)
}

func (im *impl) BumpTime(key string, tags ...string) Ender {
	return &timer{im: im, key: key, tags: tags, start: time.Now()}
}
