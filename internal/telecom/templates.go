package telecom

// Templates maps each issue category to its complaint template set.
// Placeholders use {name} syntax; every name must have a resolver declared in
// the interaction synthesizer's placeholder schema. The two sets are
// validated against each other at startup.
var Templates = map[string][]string{
	"internet_connectivity": {
		"Internet not working for {days} days. Called customer care {times} times but no resolution. Very frustrated with {operator} service.",
		"WiFi keeps disconnecting every {frequency} minutes. Can't attend online meetings. Need urgent resolution from {operator}.",
		"Fiber cable cut during {event}. When will technician visit? Already {days} days without internet in {city}.",
		"Getting only {speed}Mbps speed instead of {plan_speed}Mbps as per my {operator} plan. This is cheating!",
		"Router showing {light_color} light. Internet completely down. Work from home affected badly.",
		"Network drops during evening hours {time}. Can't stream IPL matches. Very poor {operator} service.",
		"{operator} fiber ONT device not working. Red light blinking. Need replacement urgently in {city}.",
		"Complete internet outage in {city} area for last {days} days. {operator} not responding to complaints.",
		"Intermittent connectivity issues. Internet works for 10 mins then stops. Very irritating {operator} service.",
	},
	"internet_speed": {
		"Paid for {plan_speed}Mbps {operator} plan but getting only {actual_speed}Mbps. This is fraud!",
		"Speed test shows {actual_speed}Mbps but YouTube videos buffering on {operator}. What's the use?",
		"During peak hours {time}, speed drops to {actual_speed}Mbps on {operator}. Can't work properly.",
		"Promised {plan_speed}Mbps fiber connection but reality is {actual_speed}Mbps. Disappointed with {operator}.",
		"Upload speed is terrible - only {upload_speed}Mbps on {operator}. Can't do video calls for office work.",
		"Website loading very slow on {operator}. Latency is very high. Gaming impossible.",
		"{operator} speed inconsistent throughout day. Morning {morning_speed}Mbps, evening {evening_speed}Mbps.",
	},
	"billing_overcharge": {
		"Bill increased from ₹{old_bill} to ₹{new_bill} without any plan change on {operator}. Why?",
		"Charged ₹{extra} extra for international roaming I never used on {operator}. Want refund immediately.",
		"Plan is ₹{plan_price} but {operator} bill shows ₹{actual_bill}. What are these hidden charges?",
		"Double charged on {date} by {operator}. Money deducted twice - ₹{amount} from my account. Still not refunded.",
		"Cashback of ₹{cashback} promised during {operator} recharge not received. Cheating customers.",
		"GST calculation wrong on {operator} bill. Should be ₹{correct} but charged ₹{charged}. Please correct.",
		"Billed for premium channels I didn't subscribe on {operator}. Remove charges of ₹{extra}.",
		"{operator} charged ₹{amount} for calls to customer care. This is ridiculous!",
	},
	"billing_downgrade": {
		"Current {operator} bill ₹{current_bill} is too high. Want to downgrade to ₹{target_plan} plan to save money.",
		"Planning to switch to {competitor} as they offer better rates. Can {operator} match their ₹{competitor_price} plan?",
		"After losing job, can't afford ₹{current_bill} {operator} plan. Please help me downgrade to basic plan.",
		"Family expenses increased. Need cheaper {operator} plan around ₹{budget}. What options available?",
		"Not satisfied with {operator} pricing. Thinking of porting to Jio/Airtel. Give me retention offer or I'm leaving.",
		"{operator} too expensive compared to competitors. Need ₹{budget} budget plan or will switch.",
		"Economic situation bad. Can't continue ₹{current_bill} plan. Help with downgrade to ₹{target_plan}.",
	},
	"tv_channels": {
		"Star Sports channels not working during IPL match on {operator}. This is unacceptable!",
		"{channel_count} channels missing after recharge on {operator}. Sony, Zee channels not showing.",
		"HD channels showing SD quality on {operator}. Paid for HD pack but getting poor picture quality.",
		"Regional channels (Tamil/Telugu) package not activated despite payment of ₹{amount} to {operator}.",
		"{operator} set-top box showing error code {error_code}. All channels stuck on loading screen.",
		"Colors, Star Plus channels black screen on {operator}. Other channels working fine.",
		"Subscribed to sports pack but not getting all matches on {operator}. Very disappointed.",
	},
	"tv_technical": {
		"{operator} DTH set-top box remote not working. Tried new batteries but no response.",
		"Picture freezing and pixelating on all channels on {operator}. Signal strength shows low.",
		"No audio on several channels including Colors, Star Plus on {operator}. Video playing but no sound.",
		"Recording feature not working in {operator} set-top box. Can't record favorite shows.",
		"Hotstar/JioCinema app on {operator} STB very slow. Takes 5 minutes to load one video.",
		"{operator} set-top box hanging frequently. Need to restart 10 times a day.",
		"HDMI connection issues with {operator} STB. Picture goes black randomly.",
	},
	"network_quality": {
		"Call drops frequently on {route} with {operator}. Very poor network quality.",
		"No {operator} network in metro/underground stations in {city}. Other operators working fine.",
		"VoLTE calls breaking with robot voice on {operator}. Can't understand what other person saying.",
		"Network fluctuates in apartment with {operator}. Ground floor has signal but 5th floor shows emergency only.",
		"5G icon showing but speed is like 3G on {operator}. What's the point of 5G tower in {city}?",
		"{operator} network very weak in {city}. Full bars but can't make calls.",
		"Indoor network penetration very poor with {operator}. Have to go to balcony to take calls.",
	},
	"account_issues": {
		"Porting from {old_operator} to {operator} taking more than 7 days. When will it complete?",
		"Can't login to My{operator} app. Password reset not working. Email not received.",
		"Want to change registered mobile number with {operator} but customer care says not possible. Why?",
		"Postpaid to prepaid conversion requested 15 days ago on {operator}. Still pending. Very slow process.",
		"Unable to update email address in {operator} account. System showing error every time.",
		"{operator} account locked after multiple login attempts. Can't access anything.",
		"KYC verification stuck on {operator}. Submitted documents 10 days ago, no update.",
	},
	"product_inquiry": {
		"What are current {operator} fiber plans available in {city} {pincode}? Need {speed}Mbps for work from home.",
		"Interested in upgrading from {current_plan} to {target_plan} on {operator}. What's the process and cost?",
		"Do you have WiFi mesh system for {operator}? Current router not covering full house. Need better solution.",
		"Want to add {operator} Black/Platinum plan. What are benefits and extra charges?",
		"Is 5G available in {area} for {operator}? My phone supports 5G but not getting 5G network.",
		"Looking for {operator} family plan for 4 connections. What packages available?",
		"Need information about {operator} international roaming packs for USA trip.",
	},
	"customer_retention": {
		"Competitor offering same plan for ₹{competitor_price} less. Why should I stay with {operator}?",
		"Been with {operator} for {tenure} years but no loyalty benefits. Feeling cheated.",
		"Received better offer from {competitor}. Will port out if {operator} can't match.",
		"Service quality deteriorated over last {months} months with {operator}. Thinking of switching.",
		"Friends using {competitor} very happy. Should I also switch from {operator}?",
	},
}
