// Package metrics exposes authorization counters for Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Decisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "walletguard_authorization_decisions_total",
		Help: "Terminal authorization decisions by outcome and amount class",
	}, []string{"outcome", "class"})

	BiometricAssertions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "walletguard_biometric_assertions_total",
		Help: "Biometric assertion outcomes",
	}, []string{"outcome"})

	PinChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "walletguard_pin_checks_total",
		Help: "PIN verifications by result (ok, rejected, locked, error)",
	}, []string{"result"})

	Transfers = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "walletguard_transfers_total",
		Help: "Transfers handed to the executor by result",
	}, []string{"result"})

	ActiveIntents = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "walletguard_intents_active",
		Help: "Transfer intents held in memory awaiting authorization or execution",
	})
)

// Register registers the collectors on reg (default registerer if nil).
// Registering twice is not an error.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{Decisions, BiometricAssertions, PinChecks, Transfers, ActiveIntents} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
