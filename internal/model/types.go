// Package model defines the six generated tables and their flat CSV schemas.
package model

import (
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Customer is created once by the profile generator and never mutated; all
// other generators reference it by CustomerID.
type Customer struct {
	CustomerID         string
	Name               string
	Email              string
	Phone              string
	Operator           string
	AccountCreated     time.Time
	TenureMonths       int
	Segment            string
	ServiceType        string
	CurrentPlan        string
	PlanValue          int
	ProductsSubscribed string
	AutoPayEnabled     bool
	PaymentMethod      string
	LastPaymentDate    time.Time
	OutstandingBalance int
	LifetimeValue      int
	Geography          string
	Region             string
	Pincode            int
	AgeGroup           string
	CustomerType       string
}

func (Customer) Header() []string {
	return []string{
		"customer_id", "customer_name", "email", "phone", "operator",
		"account_created_date", "tenure_months", "customer_segment", "service_type",
		"current_plan", "current_plan_value", "products_subscribed", "auto_pay_enabled",
		"payment_method", "last_payment_date", "outstanding_balance",
		"total_lifetime_value", "geography", "region", "address_pincode",
		"age_group", "customer_type",
	}
}

func (c Customer) Record() []string {
	return []string{
		c.CustomerID, c.Name, c.Email, c.Phone, c.Operator,
		c.AccountCreated.Format(DateLayout), strconv.Itoa(c.TenureMonths), c.Segment, c.ServiceType,
		c.CurrentPlan, strconv.Itoa(c.PlanValue), c.ProductsSubscribed, strconv.FormatBool(c.AutoPayEnabled),
		c.PaymentMethod, c.LastPaymentDate.Format(DateLayout), strconv.Itoa(c.OutstandingBalance),
		strconv.Itoa(c.LifetimeValue), c.Geography, c.Region, strconv.Itoa(c.Pincode),
		c.AgeGroup, c.CustomerType,
	}
}

// Interaction is one synthesized support contact. Tenure, plan, operator and
// service type are snapshots of the customer at generation time.
type Interaction struct {
	InteractionID        string
	CustomerID           string
	Timestamp            time.Time
	Channel              string
	Text                 string
	Category             string
	Sentiment            string
	SentimentScore       float64
	ResolutionStatus     string
	ResolutionTimeHours  *int
	AgentID              string
	AgentName            string
	Geography            string
	Region               string
	ChurnRisk            string
	ChurnScore           float64
	EscalationCount      int
	FollowUpRequired     bool
	DurationMinutes      int
	CustomerTenureMonths int
	PlanValue            int
	Operator             string
	ServiceType          string
}

// Week returns the interaction's year-week bucket, with weeks starting on
// Sunday and days before the year's first Sunday falling in week 00.
func (i Interaction) Week() string {
	return WeekLabel(i.Timestamp)
}

func WeekLabel(t time.Time) string {
	week := (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
	return t.Format("2006") + "-W" + pad2(week)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func (Interaction) Header() []string {
	return []string{
		"interaction_id", "customer_id", "timestamp", "date", "week", "month",
		"channel", "interaction_text", "category", "sentiment", "sentiment_score",
		"resolution_status", "resolution_time_hours", "agent_id", "agent_name",
		"geography", "region", "churn_risk", "churn_score", "escalation_count",
		"follow_up_required", "interaction_duration_min", "customer_tenure_months",
		"current_plan_value", "operator", "service_type",
	}
}

func (i Interaction) Record() []string {
	resolutionTime := ""
	if i.ResolutionTimeHours != nil {
		resolutionTime = strconv.Itoa(*i.ResolutionTimeHours)
	}
	return []string{
		i.InteractionID, i.CustomerID, i.Timestamp.Format(TimestampLayout),
		i.Timestamp.Format(DateLayout), i.Week(), i.Timestamp.Format("2006-01"),
		i.Channel, i.Text, i.Category, i.Sentiment, formatScore(i.SentimentScore),
		i.ResolutionStatus, resolutionTime, i.AgentID, i.AgentName,
		i.Geography, i.Region, i.ChurnRisk, formatScore(i.ChurnScore),
		strconv.Itoa(i.EscalationCount), strconv.FormatBool(i.FollowUpRequired),
		strconv.Itoa(i.DurationMinutes), strconv.Itoa(i.CustomerTenureMonths),
		strconv.Itoa(i.PlanValue), i.Operator, i.ServiceType,
	}
}

// Campaign funnel counts always satisfy targeted >= contacted >= responded >=
// converted; rates and financials are derived from them.
type Campaign struct {
	CampaignID       string
	Name             string
	Type             string
	TargetIssue      string
	TargetSegment    string
	StartDate        time.Time
	EndDate          time.Time
	Status           string
	Targeted         int
	Contacted        int
	Responded        int
	Converted        int
	ConversionRate   float64
	ResponseRate     float64
	Revenue          int
	Cost             int
	ROI              float64
	AvgDealValue     int
	OfferDescription string
	Channel          string
}

func (Campaign) Header() []string {
	return []string{
		"campaign_id", "campaign_name", "campaign_type", "target_issue",
		"target_segment", "start_date", "end_date", "status", "total_targeted",
		"total_contacted", "total_responded", "total_converted", "conversion_rate",
		"response_rate", "revenue_generated", "campaign_cost", "roi",
		"avg_deal_value", "offer_description", "channel_used",
	}
}

func (c Campaign) Record() []string {
	return []string{
		c.CampaignID, c.Name, c.Type, c.TargetIssue,
		c.TargetSegment, c.StartDate.Format(DateLayout), c.EndDate.Format(DateLayout),
		c.Status, strconv.Itoa(c.Targeted),
		strconv.Itoa(c.Contacted), strconv.Itoa(c.Responded), strconv.Itoa(c.Converted),
		formatScore(c.ConversionRate), formatScore(c.ResponseRate),
		strconv.Itoa(c.Revenue), strconv.Itoa(c.Cost), formatScore(c.ROI),
		strconv.Itoa(c.AvgDealValue), c.OfferDescription, c.Channel,
	}
}

// Mapping is one campaign-to-customer outreach row. Stage flags imply all
// upstream flags and unreached stages carry no date.
type Mapping struct {
	CampaignID     string
	CustomerID     string
	Contacted      bool
	ContactedDate  *time.Time
	Responded      bool
	ResponseDate   *time.Time
	Converted      bool
	ConversionDate *time.Time
	OfferAccepted  string
	Revenue        int
	Feedback       string
}

func (Mapping) Header() []string {
	return []string{
		"campaign_id", "customer_id", "contacted", "contacted_date", "responded",
		"response_date", "converted", "conversion_date", "offer_accepted",
		"revenue", "feedback",
	}
}

func (m Mapping) Record() []string {
	return []string{
		m.CampaignID, m.CustomerID, strconv.FormatBool(m.Contacted), formatDate(m.ContactedDate),
		strconv.FormatBool(m.Responded), formatDate(m.ResponseDate),
		strconv.FormatBool(m.Converted), formatDate(m.ConversionDate),
		m.OfferAccepted, strconv.Itoa(m.Revenue), m.Feedback,
	}
}

// TrendRecord is a (week, category, geography) rollup with week-over-week
// change and severity classification.
type TrendRecord struct {
	Week             string
	Category         string
	Geography        string
	IssueCount       int
	AvgChurnScore    float64
	ChangePercentage float64
	Trend            string
	Severity         string
}

func (TrendRecord) Header() []string {
	return []string{
		"week", "category", "geography", "issue_count", "avg_churn_score",
		"change_percentage", "trend", "severity",
	}
}

func (t TrendRecord) Record() []string {
	return []string{
		t.Week, t.Category, t.Geography, strconv.Itoa(t.IssueCount),
		formatScore(t.AvgChurnScore), formatScore(t.ChangePercentage),
		t.Trend, t.Severity,
	}
}

// Product is a static catalog entry mapped to the issue categories it
// addresses.
type Product struct {
	ProductID        string
	Name             string
	Category         string
	Type             string
	Price            int
	Description      string
	TargetIssues     []string
	SuitableForChurn bool
	StockStatus      string
	PopularityScore  int
	AvgRating        float64
}

func (Product) Header() []string {
	return []string{
		"product_id", "product_name", "product_category", "product_type", "price",
		"description", "target_issues", "suitable_for_churn", "stock_status",
		"popularity_score", "avg_rating",
	}
}

func (p Product) Record() []string {
	return []string{
		p.ProductID, p.Name, p.Category, p.Type, strconv.Itoa(p.Price),
		p.Description, strings.Join(p.TargetIssues, ","),
		strconv.FormatBool(p.SuitableForChurn), p.StockStatus,
		strconv.Itoa(p.PopularityScore), strconv.FormatFloat(p.AvgRating, 'f', 1, 64),
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
