// Package telecom holds the static Indian-telecom domain context the
// generators sample from: operators, geography, plan price lists, issue
// categories and complaint templates.
package telecom

var Operators = []string{"Jio", "Airtel", "Vi", "BSNL"}

// Cities is the 20-city pool customers are drawn from.
var Cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Kolkata", "Chennai", "Hyderabad",
	"Pune", "Ahmedabad", "Jaipur", "Lucknow", "Chandigarh", "Indore",
	"Nagpur", "Coimbatore", "Vadodara", "Ludhiana", "Agra", "Nashik", "Surat", "Kochi",
}

// DefaultRegion is used when a city is missing from the region table.
const DefaultRegion = "West"

var cityRegions = map[string]string{
	"Mumbai": "West", "Pune": "West", "Ahmedabad": "West", "Surat": "West", "Nagpur": "West",
	"Vadodara": "West", "Indore": "West", "Nashik": "West",
	"Delhi": "North", "Jaipur": "North", "Lucknow": "North", "Chandigarh": "North",
	"Ludhiana": "North", "Agra": "North",
	"Bangalore": "South", "Chennai": "South", "Hyderabad": "South", "Kochi": "South",
	"Coimbatore": "South",
	"Kolkata":    "East",
}

// RegionFor maps a city to its region, defaulting for unknown cities.
func RegionFor(city string) string {
	if region, ok := cityRegions[city]; ok {
		return region
	}
	return DefaultRegion
}

// ServiceTypes are the supported subscription kinds.
var ServiceTypes = []string{"fiber", "postpaid", "prepaid"}

// Plans lists monthly plan prices per operator and service type. Keys are
// lower-cased operator names.
var Plans = map[string]map[string][]int{
	"jio": {
		"prepaid":  {239, 299, 399, 666, 719, 2999},
		"postpaid": {399, 599, 999, 1499},
		"fiber":    {699, 999, 1499, 2499, 3999},
	},
	"airtel": {
		"prepaid":  {265, 359, 549, 719, 3359},
		"postpaid": {499, 749, 999, 1599},
		"fiber":    {799, 999, 1499, 3999},
	},
	"vi": {
		"prepaid":  {239, 299, 409, 699, 3099},
		"postpaid": {399, 699, 999},
		"fiber":    {699, 999, 1499},
	},
	"bsnl": {
		"prepaid":  {199, 299, 399},
		"postpaid": {399, 599},
		"fiber":    {499, 799, 999},
	},
}

// FallbackPlanValues covers an operator/service combination missing from the
// price table.
var FallbackPlanValues = []int{399, 699, 999}

// Categories are the ten fixed issue categories.
var Categories = []string{
	"internet_connectivity",
	"internet_speed",
	"billing_overcharge",
	"billing_downgrade",
	"tv_channels",
	"tv_technical",
	"network_quality",
	"account_issues",
	"product_inquiry",
	"customer_retention",
}

// FiberCategoryWeights skews fiber customers toward connectivity, speed and
// TV issues.
var FiberCategoryWeights = map[string]float64{
	"internet_connectivity": 0.25,
	"internet_speed":        0.20,
	"billing_overcharge":    0.15,
	"billing_downgrade":     0.10,
	"tv_channels":           0.10,
	"tv_technical":          0.05,
	"network_quality":       0.05,
	"account_issues":        0.05,
	"product_inquiry":       0.03,
	"customer_retention":    0.02,
}

// MobileCategoryWeights skews prepaid/postpaid customers toward network
// quality and billing issues.
var MobileCategoryWeights = map[string]float64{
	"network_quality":       0.25,
	"billing_overcharge":    0.20,
	"billing_downgrade":     0.15,
	"internet_connectivity": 0.10,
	"internet_speed":        0.10,
	"account_issues":        0.10,
	"product_inquiry":       0.05,
	"customer_retention":    0.03,
	"tv_channels":           0.01,
	"tv_technical":          0.01,
}

var FirstNames = []string{
	"Rahul", "Priya", "Amit", "Sneha", "Rajesh", "Anjali", "Vikram", "Pooja",
	"Arjun", "Kavita", "Sanjay", "Neha", "Karan", "Divya", "Arun", "Ritu",
	"Varun", "Simran", "Suresh", "Meera", "Rohan", "Shreya", "Manish", "Sakshi",
}

var LastNames = []string{
	"Kumar", "Sharma", "Singh", "Patel", "Gupta", "Reddy", "Iyer", "Joshi",
	"Mehta", "Nair", "Desai", "Rao", "Pillai", "Agarwal", "Chopra", "Kapoor",
}

var PaymentMethods = []string{"Credit Card", "Debit Card", "UPI", "Net Banking", "Cash"}

var ProductBundles = []string{
	"Internet",
	"Internet,TV",
	"Internet,Phone",
	"Internet,TV,Phone",
}

var AgeGroups = []string{"18-25", "26-35", "36-50", "50+"}

var CampaignTypes = []string{"Upsell", "Cross-sell", "Retention", "Winback", "Upgrade"}

var CampaignSegments = []string{"High Churn", "Speed Issues", "Billing Complaints", "All Customers"}

var CampaignChannels = []string{"Email", "SMS", "Call", "App Notification", "Multi-channel"}

var ConvertedOffers = []string{
	"Speed Upgrade", "WiFi Booster", "Plan Downgrade", "Retention Offer", "Bundle Discount",
}

// FeedbackChoices includes the empty string: a responder who left nothing.
var FeedbackChoices = []string{
	"Good offer, accepted",
	"Not interested right now",
	"Too expensive",
	"Already solved the issue",
	"Will think about it",
	"",
}
