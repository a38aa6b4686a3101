package metrics

import (
	"strings"

	"github.com/oasislabs/decoder-client/config"
	"github.com/oasislabs/decoder-client/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgMetricsMode              = "metrics.mode"
	cfgMetricsPushAddr          = "metrics.push.addr"
	cfgMetricsPushJobName       = "metrics.push.job_name"
	cfgMetricsPushInstanceLabel = "metrics.push.instance_label"

	metricsModeNone = "none"
	metricsModePush = "push"
)

var metricsModes = []string{metricsModeNone, metricsModePush}

type Config struct {
	Mode              string
	PushAddr          string
	PushJobName       string
	PushInstanceLabel string
}

func (m *Config) Log(fields log.Fields) {
	fields.Add(cfgMetricsMode, m.Mode)
	fields.Add(cfgMetricsPushAddr, m.PushAddr)
	fields.Add(cfgMetricsPushJobName, m.PushJobName)
	fields.Add(cfgMetricsPushInstanceLabel, m.PushInstanceLabel)
}

func (m *Config) Configure(v *viper.Viper) error {
	m.Mode = strings.ToLower(v.GetString(cfgMetricsMode))
	m.PushAddr = v.GetString(cfgMetricsPushAddr)
	m.PushJobName = v.GetString(cfgMetricsPushJobName)
	m.PushInstanceLabel = v.GetString(cfgMetricsPushInstanceLabel)

	switch m.Mode {
	case "", metricsModeNone:
		m.Mode = metricsModeNone
		return nil
	case metricsModePush:
		if len(m.PushAddr) == 0 {
			return config.ErrKeyNotSet{Key: cfgMetricsPushAddr}
		}
		if len(m.PushJobName) == 0 {
			return config.ErrKeyNotSet{Key: cfgMetricsPushJobName}
		}
		return nil
	default:
		return config.ErrInvalidValue{Key: cfgMetricsMode, InvalidValue: m.Mode, Values: metricsModes}
	}
}

func (m *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgMetricsMode, metricsModeNone, "Prometheus metrics mode. Must be one of none, push.")
	cmd.PersistentFlags().String(cfgMetricsPushAddr, "", "Prometheus push gateway address")
	cmd.PersistentFlags().String(cfgMetricsPushJobName, "decoder-client", "Prometheus push job name")
	cmd.PersistentFlags().String(cfgMetricsPushInstanceLabel, "", "Prometheus push instance label")

	return nil
}
