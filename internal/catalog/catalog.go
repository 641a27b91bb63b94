// Package catalog holds the reference tables the generators draw from.
package catalog

type Bank struct {
	Code       string
	Name       string
	IFSCPrefix string
}

type City struct {
	Name  string
	State string
}

var FirstNames = []string{
	"Aarav", "Aditya", "Advait", "Amit", "Anand", "Aniket", "Ankit", "Arjun", "Aryan", "Ashish",
	"Ayush", "Chirag", "Darshan", "Deepak", "Dev", "Dhruv", "Gaurav", "Hardik", "Harsh", "Ishaan",
	"Jay", "Karan", "Kartik", "Krish", "Krishna", "Kunal", "Manish", "Mayank", "Mihir", "Nakul",
	"Naman", "Nikhil", "Nitin", "Pranav", "Pratik", "Raghav", "Rahul", "Raj", "Rajat", "Rajesh",
	"Ravi", "Rohit", "Rohan", "Sahil", "Sai", "Sameer", "Sanjay", "Siddharth", "Suresh", "Tanmay",
	"Varun", "Vedant", "Vikram", "Vinay", "Vishal", "Vivek", "Yash", "Yogesh",
	"Aadhya", "Aanya", "Aditi", "Ahana", "Aisha", "Ananya", "Anjali", "Anushka", "Aradhya", "Avni",
	"Diya", "Divya", "Ishika", "Isha", "Janhvi", "Kavya", "Khushi", "Kiara", "Kriti", "Larisa",
	"Meera", "Myra", "Naina", "Neha", "Nisha", "Pari", "Pooja", "Prachi", "Priya", "Radha",
	"Riya", "Sana", "Sara", "Saanvi", "Shanaya", "Shivani", "Shreya", "Simran", "Sneha", "Tanvi",
	"Tara", "Trisha", "Vanya", "Zara",
}

var LastNames = []string{
	"Agarwal", "Ahuja", "Bajaj", "Bansal", "Bhat", "Bhatia", "Bhatt", "Chandra", "Chopra", "Das",
	"Desai", "Deshpande", "Dubey", "Garg", "Ghosh", "Goyal", "Gupta", "Iyer", "Jain", "Joshi",
	"Kapoor", "Kaur", "Khan", "Khanna", "Kumar", "Kulkarni", "Malhotra", "Mehta", "Menon", "Mishra",
	"Nair", "Naidu", "Pandey", "Patel", "Patil", "Pillai", "Rao", "Reddy", "Roy", "Saxena",
	"Shah", "Sharma", "Shetty", "Singh", "Sinha", "Trivedi", "Varma", "Verma", "Yadav",
}

var Cities = []City{
	{"Mumbai", "Maharashtra"}, {"Delhi", "Delhi"}, {"Bangalore", "Karnataka"},
	{"Hyderabad", "Telangana"}, {"Ahmedabad", "Gujarat"}, {"Chennai", "Tamil Nadu"},
	{"Kolkata", "West Bengal"}, {"Pune", "Maharashtra"}, {"Jaipur", "Rajasthan"},
	{"Surat", "Gujarat"}, {"Lucknow", "Uttar Pradesh"}, {"Kanpur", "Uttar Pradesh"},
	{"Nagpur", "Maharashtra"}, {"Indore", "Madhya Pradesh"}, {"Thane", "Maharashtra"},
	{"Bhopal", "Madhya Pradesh"}, {"Visakhapatnam", "Andhra Pradesh"}, {"Vadodara", "Gujarat"},
	{"Ghaziabad", "Uttar Pradesh"}, {"Ludhiana", "Punjab"}, {"Agra", "Uttar Pradesh"},
	{"Nashik", "Maharashtra"}, {"Faridabad", "Haryana"}, {"Meerut", "Uttar Pradesh"},
	{"Rajkot", "Gujarat"}, {"Varanasi", "Uttar Pradesh"}, {"Srinagar", "Jammu and Kashmir"},
	{"Aurangabad", "Maharashtra"}, {"Dhanbad", "Jharkhand"}, {"Amritsar", "Punjab"},
	{"Navi Mumbai", "Maharashtra"}, {"Allahabad", "Uttar Pradesh"}, {"Ranchi", "Jharkhand"},
	{"Howrah", "West Bengal"}, {"Coimbatore", "Tamil Nadu"}, {"Jabalpur", "Madhya Pradesh"},
	{"Gwalior", "Madhya Pradesh"}, {"Vijayawada", "Andhra Pradesh"}, {"Jodhpur", "Rajasthan"},
	{"Madurai", "Tamil Nadu"}, {"Raipur", "Chhattisgarh"}, {"Kota", "Rajasthan"},
}

var Banks = []Bank{
	{"SBIN", "State Bank of India", "SBIN0"},
	{"PUNB", "Punjab National Bank", "PUNB0"},
	{"BARB", "Bank of Baroda", "BARB0"},
	{"CNRB", "Canara Bank", "CNRB0"},
	{"UBIN", "Union Bank of India", "UBIN0"},
	{"BKID", "Bank of India", "BKID0"},
	{"IDIB", "Indian Bank", "IDIB0"},
	{"CBIN", "Central Bank of India", "CBIN0"},
	{"HDFC", "HDFC Bank", "HDFC0"},
	{"ICIC", "ICICI Bank", "ICIC0"},
	{"UTIB", "Axis Bank", "UTIB0"},
	{"KKBK", "Kotak Mahindra Bank", "KKBK0"},
	{"INDB", "IndusInd Bank", "INDB0"},
	{"YESB", "Yes Bank", "YESB0"},
	{"IDFB", "IDFC First Bank", "IDFB0"},
	{"FDRL", "Federal Bank", "FDRL0"},
	{"PYTM", "Paytm Payments Bank", "PYTM0"},
	{"AIRP", "Airtel Payments Bank", "AIRP0"},
}

// LendingBanks excludes payment banks, which cannot lend or hold term deposits.
func LendingBanks() []Bank {
	return BanksExcept("PYTM", "AIRP")
}

func BanksExcept(codes ...string) []Bank {
	out := make([]Bank, 0, len(Banks))
	for _, bank := range Banks {
		if !containsString(codes, bank.Code) {
			out = append(out, bank)
		}
	}
	return out
}

func BanksWithCodes(codes ...string) []Bank {
	out := make([]Bank, 0, len(codes))
	for _, bank := range Banks {
		if containsString(codes, bank.Code) {
			out = append(out, bank)
		}
	}
	return out
}

func BankNames(banks []Bank) []string {
	names := make([]string, len(banks))
	for i, bank := range banks {
		names[i] = bank.Name
	}
	return names
}

var UPIHandles = []string{
	"okicici", "paytm", "ybl", "oksbi", "axisbank", "okhdfcbank", "okaxis", "ibl",
	"apl", "fbl", "indianbank", "cnrb", "barodampay", "pnb", "upi",
}

var Merchants = map[string][]string{
	"food": {
		"Swiggy", "Zomato", "Dominos Pizza", "McDonalds", "KFC", "Burger King",
		"Subway", "Pizza Hut", "Starbucks Coffee", "Cafe Coffee Day",
		"Wow Momo", "Faasos", "Behrouz Biryani", "Oven Story",
		"Haldirams", "Bikanervala", "Sagar Ratna", "Saravana Bhavan",
	},
	"ecommerce": {
		"Amazon India", "Flipkart", "Myntra", "Ajio", "Meesho",
		"Snapdeal", "Nykaa", "FirstCry", "Pepperfry",
		"Urban Ladder", "Lenskart", "Boat Lifestyle",
	},
	"grocery": {
		"BigBasket", "Blinkit", "Zepto", "Swiggy Instamart",
		"JioMart", "DMart Ready", "Amazon Fresh", "Dunzo",
		"Milkbasket", "Nature's Basket", "Spencer's Retail",
	},
	"transport": {
		"Ola Cabs", "Uber India", "Rapido", "Blu Smart",
		"Delhi Metro", "Mumbai Metro", "Bangalore Metro",
		"IRCTC", "Redbus", "MakeMyTrip", "Goibibo",
		"Indian Oil Fuel", "Bharat Petroleum", "HP Petrol Pump",
	},
	"utilities": {
		"Reliance Jio", "Airtel", "Vi Vodafone Idea", "BSNL",
		"Tata Power", "Adani Electricity", "BESCOM", "MSEDCL",
		"Indraprastha Gas", "Mahanagar Gas",
		"Tata Sky", "Dish TV", "Airtel Digital TV",
	},
	"entertainment": {
		"Netflix India", "Amazon Prime Video", "Disney+ Hotstar",
		"Zee5", "SonyLIV", "Voot", "Apple TV+",
		"Spotify India", "YouTube Premium", "Gaana",
		"BookMyShow", "PVR Cinemas", "INOX Movies",
	},
	"education": {
		"Byju's", "Unacademy", "Vedantu", "Toppr",
		"upGrad", "Coursera", "Udemy",
		"Simplilearn", "Great Learning", "Testbook",
	},
	"healthcare": {
		"Apollo Pharmacy", "1mg", "PharmEasy", "Netmeds",
		"Practo", "Apollo Hospitals", "Fortis Healthcare",
		"Max Healthcare", "Manipal Hospitals",
	},
	"shopping": {
		"Reliance Digital", "Croma", "Vijay Sales",
		"Lifestyle", "Westside", "Pantaloons", "Max Fashion",
		"Decathlon Sports", "Tanishq Jewellers", "Kalyan Jewellers",
	},
	"others": {
		"CRED", "Groww", "Zerodha", "Upstox",
		"Policy Bazaar", "Paytm", "PhonePe", "Google Pay",
		"Amazon Pay", "FreeCharge", "MobiKwik",
	},
}

var MutualFundHouses = []string{
	"SBI Mutual Fund", "HDFC Mutual Fund", "ICICI Prudential Mutual Fund",
	"Aditya Birla Sun Life Mutual Fund", "Nippon India Mutual Fund",
	"Kotak Mahindra Mutual Fund", "UTI Mutual Fund", "Axis Mutual Fund",
	"DSP Mutual Fund", "Franklin Templeton Mutual Fund", "Mirae Asset Mutual Fund",
	"Tata Mutual Fund", "IDFC Mutual Fund", "Invesco Mutual Fund",
}

var MutualFundSchemes = []string{
	"Equity Large Cap Fund", "Equity Mid Cap Fund", "Small Cap Fund", "Multi Cap Fund",
	"Focused Equity Fund", "Blue Chip Fund", "Balanced Advantage Fund", "Hybrid Equity Fund",
	"Tax Saver Fund (ELSS)", "Index Fund - Nifty 50", "Index Fund - Sensex", "Liquid Fund",
	"Ultra Short Duration Fund", "Corporate Bond Fund", "Banking & PSU Fund",
}

var EquityCompanies = []string{
	"Reliance Industries", "TCS", "HDFC Bank", "Infosys", "ICICI Bank",
	"Hindustan Unilever", "ITC", "Bharti Airtel", "State Bank of India", "Kotak Mahindra Bank",
}

var Companies = []string{
	"Tata Consultancy Services", "Infosys Technologies", "Wipro Limited", "HCL Technologies",
	"Tech Mahindra", "Reliance Industries", "HDFC Bank", "ICICI Bank", "Amazon India",
	"Flipkart", "Ola Cabs", "Paytm", "Swiggy", "Zomato", "Byju's", "Accenture India",
	"Cognizant Technology Solutions", "IBM India", "Microsoft India", "Google India",
	"Larsen & Toubro", "Bharti Airtel", "Asian Paints", "Maruti Suzuki", "Mahindra & Mahindra",
}

var CreditCardBanks = []string{
	"HDFC Bank", "ICICI Bank", "SBI Card", "Axis Bank", "Kotak Mahindra Bank",
	"IndusInd Bank", "Standard Chartered", "Citibank", "HSBC", "American Express",
	"Yes Bank", "IDFC First Bank", "RBL Bank", "AU Small Finance Bank",
}

var CreditCardVariants = []string{
	"Regalia", "Infinia", "Diners Club Black", "Signature", "Platinum", "Gold",
	"Silver", "Titanium", "Privilege", "Coral", "MoneyBack", "Cashback",
	"Rewards", "Miles", "Amazon Pay", "Flipkart", "SimplyCLICK", "SuperValue",
}

var CardNetworks = []string{"VISA", "MASTERCARD", "RUPAY", "AMEX"}

var Relationships = []string{
	"Father", "Mother", "Spouse", "Son", "Daughter",
	"Brother", "Sister", "Grandfather", "Grandmother",
}

var FinancialPersonas = []string{
	"Conservative Saver", "Aggressive Investor", "Balanced Investor", "Risk Averse",
	"Growth Oriented", "Income Focused", "Wealth Builder", "Retirement Planner",
	"Young Professional", "Family Provider",
}

var UserPersonas = []string{
	"Tech Savvy Professional", "Traditional Conservative", "Young Entrepreneur",
	"Family Oriented", "Career Focused", "Lifestyle Enthusiast", "Budget Conscious",
	"Premium Customer", "Digital Native", "Value Seeker",
}

var EmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "rediffmail.com"}

var (
	PersonalLoanLenders = []string{"Bajaj Finance", "Mahindra Finance", "Tata Capital", "Fullerton India"}
	HomeLoanLenders     = []string{"HDFC Ltd", "LIC Housing Finance", "Bajaj Housing Finance", "PNB Housing Finance"}
	CarLoanLenders      = []string{"Bajaj Auto Finance", "Mahindra Finance", "Cholamandalam Finance", "Tata Motors Finance"}
	EducationLoanBanks  = []string{"SBIN", "HDFC", "ICIC", "UTIB", "CNRB"}
	PPFBanks            = []string{"SBIN", "HDFC", "ICIC", "UTIB"}
)

const (
	DefaultPersona     = "Balanced Investor"
	DefaultUserPersona = "Tech Savvy Professional"
)

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
