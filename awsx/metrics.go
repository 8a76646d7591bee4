package awsx

import (
	"context"
	"os"
	"sort"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	MetricHTTPRequests = "HTTPRequests"
	MetricHTTPErrors   = "HTTPErrors"
	MetricHTTPLatency  = "HTTPLatencyMs"

	MetricDispatchSent   = "NotificationsSent"
	MetricDispatchFailed = "NotificationsFailed"
)

// MetricsClient publishes counters and latencies to CloudWatch. Disabled
// (no-op) unless CLOUDWATCH_NAMESPACE is set, so local runs need no AWS.
type MetricsClient struct {
	client    *cloudwatch.Client
	namespace string
	enabled   bool
}

func NewMetricsClient(ctx context.Context) (*MetricsClient, error) {
	namespace := os.Getenv("CLOUDWATCH_NAMESPACE")
	if namespace == "" {
		return &MetricsClient{enabled: false}, nil
	}

	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &MetricsClient{
		client:    cloudwatch.NewFromConfig(cfg),
		namespace: namespace,
		enabled:   true,
	}, nil
}

func (m *MetricsClient) IsEnabled() bool {
	return m != nil && m.enabled
}

func (m *MetricsClient) RecordCount(ctx context.Context, name string, dims map[string]string) error {
	return m.put(ctx, name, 1, types.StandardUnitCount, dims)
}

func (m *MetricsClient) RecordLatency(ctx context.Context, name string, d time.Duration, dims map[string]string) error {
	return m.put(ctx, name, float64(d.Milliseconds()), types.StandardUnitMilliseconds, dims)
}

func (m *MetricsClient) put(ctx context.Context, name string, value float64, unit types.StandardUnit, dims map[string]string) error {
	if !m.IsEnabled() {
		return nil
	}

	keys := make([]string, 0, len(dims))
	for k := range dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dimensions := make([]types.Dimension, 0, len(keys))
	for _, k := range keys {
		dimensions = append(dimensions, types.Dimension{
			Name:  sdkaws.String(k),
			Value: sdkaws.String(dims[k]),
		})
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(m.namespace),
		MetricData: []types.MetricDatum{{
			MetricName: sdkaws.String(name),
			Value:      sdkaws.Float64(value),
			Unit:       unit,
			Dimensions: dimensions,
			Timestamp:  sdkaws.Time(time.Now()),
		}},
	})
	return err
}
