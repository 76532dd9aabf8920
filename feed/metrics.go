// file: feed/metrics.go
package feed

import (
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"street-scan/logger"
)

// Namespace for all Street Scan metrics
var metricsNamespace = "StreetScan"

// Reuse a single CloudWatch client for all metrics calls
var cwClient = cloudwatch.New(session.Must(session.NewSession()))

// metricsEnabled gates publication; off by default so local runs and tests
// never talk to CloudWatch.
var metricsEnabled atomic.Bool

// EnableMetrics turns CloudWatch publication on or off.
func EnableMetrics(on bool) {
	metricsEnabled.Store(on)
}

// PublishFeedConnections pushes the current feed connection count.
func PublishFeedConnections(count int) {
	putMetric("FeedConnections", float64(count), "Count")
}

// PublishReportSubmission counts one accepted report submission.
func PublishReportSubmission() {
	putMetric("ReportSubmissions", 1, "Count")
}

// PublishClassificationRejection counts one submission the model turned away.
func PublishClassificationRejection() {
	putMetric("ClassificationRejections", 1, "Count")
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string) {
	if !metricsEnabled.Load() {
		return
	}

	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Application"),
						Value: aws.String("street-scan"),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
