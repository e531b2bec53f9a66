package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Метрики консьюмера.
var (
	ConsumerRecordsPolled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_consumer_records_polled_total",
			Help: "Number of records returned by broker polls",
		},
		[]string{"topic"},
	)
	ConsumerRecordsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_consumer_records_processed_total",
			Help: "Number of records acknowledged after a successful dispatch",
		},
		[]string{"topic"},
	)
	ConsumerCycleFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_consumer_cycle_failures_total",
			Help: "Failed consumer cycles by stage",
		},
		[]string{"stage"}, // poll|dispatch|commit
	)
	ConsumerVerdicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_consumer_verdicts_total",
			Help: "Error strategy verdicts",
		},
		[]string{"verdict"}, // retry|skip
	)
	ConsumerDispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventbus_consumer_dispatch_duration_seconds",
			Help:    "Duration of one dispatch step",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"}, // single|batch
	)
	ConsumerConsecutiveErrors = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventbus_consumer_consecutive_errors",
			Help: "Current value of the consecutive error counter",
		},
	)
	ConsumerCrashes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "eventbus_consumer_crashes_total",
			Help: "Number of times a consumer loop exhausted its error budget",
		},
	)
)

// Метрики продьюсера.
var (
	ProducerRecordsEnqueued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_producer_records_enqueued_total",
			Help: "Number of records handed to the producer client",
		},
		[]string{"topic"},
	)
	ProducerRecordsDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_producer_records_delivered_total",
			Help: "Number of records acknowledged by the broker",
		},
		[]string{"topic"},
	)
	ProducerDeliveryFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_producer_delivery_failures_total",
			Help: "Number of records the broker failed to accept",
		},
		[]string{"topic"},
	)
	ProducerInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventbus_producer_in_flight",
			Help: "Records enqueued and not yet reported",
		},
	)
)

// Метрики хоста: журнал «ядовитых» сообщений и кэш счётчиков попыток.
var (
	PoisonJournaled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_poison_journaled_total",
			Help: "Records written to the poison journal and skipped",
		},
		[]string{"topic", "reason"}, // reason: serialization|exhausted|batch_skipped|delivery_failed
	)
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует все метрики в default registry. Повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ConsumerRecordsPolled, ConsumerRecordsProcessed, ConsumerCycleFailures,
			ConsumerVerdicts, ConsumerDispatchDuration, ConsumerConsecutiveErrors, ConsumerCrashes,
			ProducerRecordsEnqueued, ProducerRecordsDelivered, ProducerDeliveryFailures, ProducerInFlight,
			PoisonJournaled, CacheOps, CacheSize,
		)
	})
}
