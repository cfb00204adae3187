package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestBusinessMetrics(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording sign-up outcomes", func() {
			Convey("Then recording should not panic", func() {
				So(func() {
					manager.RecordSignup()
					manager.RecordUnregister()
					manager.RecordSignupRejection("already_registered")
					manager.RecordSignupRejection("not_found")
					manager.RecordUnregisterRejection("not_registered")
				}, ShouldNotPanic)
			})
		})

		Convey("When updating directory gauges", func() {
			Convey("Then updates should not panic", func() {
				So(func() {
					manager.UpdateActivitiesTotal(9)
					manager.UpdateParticipantsTotal(14)
					manager.UpdateRosterSize("Chess Club", 2)
					manager.UpdateRosterUtilization("Chess Club", 2.0/12.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When observing store latencies", func() {
			Convey("Then observations should not panic", func() {
				So(func() {
					manager.RecordStoreUpdateLatency(0.3)
					manager.RecordStoreQueryLatency(0.1)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestHTTPAndErrorMetrics(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording HTTP metrics", func() {
			So(func() {
				manager.RecordHTTPRequest("activities", "GET", "200")
				manager.RecordHTTPRequestDuration("activities", "GET", "200", 1.2)
			}, ShouldNotPanic)
		})

		Convey("When recording error metrics", func() {
			So(func() {
				manager.RecordErrorByEndpoint("signup", "POST", "client_error")
				manager.RecordErrorByType("client_error", "medium")
				manager.RecordErrorLatency("http", "client_error", 0.8)
			}, ShouldNotPanic)
		})
	})
}

func TestSystemMetrics(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When updating system metrics", func() {
			So(func() {
				manager.UpdateSystemMemoryUsage(1024 * 1024)
				manager.UpdateSystemGoroutineCount(12)
				manager.RecordSystemGCPauseTime(0.05)
			}, ShouldNotPanic)
		})
	})
}

func TestDisabledManager(t *testing.T) {
	Convey("Given a disabled metrics manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(
			WithPrometheusRegistry(registry),
			WithMetricsEnabled(false),
		)

		Convey("When recording anything", func() {
			Convey("Then all calls should be no-ops and not panic", func() {
				So(func() {
					manager.RecordSignup()
					manager.RecordUnregister()
					manager.RecordSignupRejection("not_found")
					manager.UpdateActivitiesTotal(1)
					manager.UpdateParticipantsTotal(1)
					manager.UpdateRosterSize("Chess Club", 1)
					manager.UpdateRosterUtilization("Chess Club", 0.5)
					manager.RecordStoreUpdateLatency(1)
					manager.RecordStoreQueryLatency(1)
					manager.RecordHTTPRequest("activities", "GET", "200")
					manager.RecordHTTPRequestDuration("activities", "GET", "200", 1)
					manager.RecordErrorByEndpoint("signup", "POST", "client_error")
					manager.RecordErrorByType("client_error", "medium")
					manager.RecordErrorLatency("http", "client_error", 1)
					manager.UpdateSystemMemoryUsage(1)
					manager.UpdateSystemGoroutineCount(1)
					manager.RecordSystemGCPauseTime(1)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When using the package-level helpers", func() {
			Convey("Then they should delegate without panicking", func() {
				So(func() {
					RecordSignup()
					RecordUnregister()
					RecordSignupRejection("already_registered")
					RecordUnregisterRejection("not_registered")
					UpdateActivitiesTotal(9)
					UpdateParticipantsTotal(20)
					UpdateRosterSize("Debate Team", 3)
					UpdateRosterUtilization("Debate Team", 0.3)
					RecordStoreUpdateLatency(0.4)
					RecordStoreQueryLatency(0.2)
					RecordHTTPRequest("unregister", "DELETE", "200")
					RecordHTTPRequestDuration("unregister", "DELETE", "200", 2)
					RecordErrorByEndpoint("unregister", "DELETE", "not_found")
					RecordErrorByType("not_found", "medium")
					RecordErrorLatency("http", "not_found", 2)
					UpdateSystemMemoryUsage(2048)
					UpdateSystemGoroutineCount(8)
					RecordSystemGCPauseTime(0.1)
				}, ShouldNotPanic)
			})
		})

		Convey("When asking for the registry", func() {
			Convey("Then it should expose the custom registry", func() {
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}
