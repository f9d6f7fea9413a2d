// File: services/metrics.go
package services

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"

	"go-clan-admin/logger"
)

// Metric names.
const (
	MetricUnauthorized     = "UnauthorizedAttempts"
	MetricLoginSucceeded   = "LoginSucceeded"
	MetricLoginFailed      = "LoginFailed"
	MetricRequestAccepted  = "JoinRequestsAccepted"
	MetricAcceptReverted   = "JoinRequestAcceptReverted"
	MetricJoinRequestsOpen = "JoinRequestsSubmitted"
	MetricStoreErrors      = "StoreErrors"
)

// MetricsPublisher records operational counters. Publish must not block.
type MetricsPublisher interface {
	Publish(name string, value float64, unit string)
}

// Count publishes one occurrence of name.
func Count(p MetricsPublisher, name string) {
	if p != nil {
		p.Publish(name, 1, cloudwatch.StandardUnitCount)
	}
}

// NoopPublisher drops every metric.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, float64, string) {}

// CloudWatchPublisher pushes metrics to CloudWatch in the background, one
// PutMetricData call per datum, tagged with the service name.
type CloudWatchPublisher struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
	service   string
}

// NewCloudWatchPublisher builds a client from the default AWS credential chain.
func NewCloudWatchPublisher(namespace, service string) (*CloudWatchPublisher, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return NewCloudWatchPublisherWithClient(cloudwatch.New(sess), namespace, service), nil
}

// NewCloudWatchPublisherWithClient uses an existing client.
func NewCloudWatchPublisherWithClient(client cloudwatchiface.CloudWatchAPI, namespace, service string) *CloudWatchPublisher {
	return &CloudWatchPublisher{client: client, namespace: namespace, service: service}
}

// Publish sends the datum asynchronously.
func (p *CloudWatchPublisher) Publish(name string, value float64, unit string) {
	go p.putMetric(name, value, unit)
}

// -----------------------------------------------------------
// internal helper to package up CloudWatch calls
// -----------------------------------------------------------
func (p *CloudWatchPublisher) putMetric(name string, value float64, unit string) {
	_, err := p.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(p.namespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(name),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Service"),
						Value: aws.String(p.service),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})
	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", name, err)
	}
}
