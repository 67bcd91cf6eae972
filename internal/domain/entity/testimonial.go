package entity

// Testimonial is a customer quote shown on the landing page.
type Testimonial struct {
	Quote  string
	Name   string
	Title  string
	Avatar string
}

const avatarBase = "https://api.dicebear.com/7.x/personas/svg?seed="

var testimonials = []Testimonial{
	{
		Quote:  "We used their user stories and acceptance criteria in our RFP. The quotes we got back were so much easier to compare, and we ended up saving thousands!",
		Name:   "Maria L.",
		Title:  "Startup Founder",
		Avatar: avatarBase + "MariaL&backgroundColor=b6e3f4",
	},
	{
		Quote:  "Their Premium Package was a lifesaver. The lo-fi wireframes helped our team visualize user flow, and we knew exactly which outsourcing vendor to pick.",
		Name:   "Thomas K.",
		Title:  "IT Director",
		Avatar: avatarBase + "ThomasK&backgroundColor=c0aede",
	},
	{
		Quote:  "The requirements documentation was crystal clear. Our development team completed the project 30% faster than usual.",
		Name:   "Sarah M.",
		Title:  "Product Manager",
		Avatar: avatarBase + "SarahM&backgroundColor=ffdfbf",
	},
	{
		Quote:  "Finally, a service that understands both business needs and technical requirements. Worth every penny!",
		Name:   "James R.",
		Title:  "CTO",
		Avatar: avatarBase + "JamesR&backgroundColor=d1d4f9",
	},
	{
		Quote:  "The acceptance criteria they wrote helped us avoid countless revision cycles. Exceptional attention to detail.",
		Name:   "Elena P.",
		Title:  "Engineering Lead",
		Avatar: avatarBase + "ElenaP&backgroundColor=b6e3f4",
	},
	{
		Quote:  "Their requirements package gave us the confidence to scale our project internationally. Absolutely professional service.",
		Name:   "Michael C.",
		Title:  "Global Operations Director",
		Avatar: avatarBase + "MichaelC&backgroundColor=c0aede",
	},
	{
		Quote:  "The level of detail in the user stories made development estimations incredibly accurate. We delivered on time and on budget.",
		Name:   "David W.",
		Title:  "Agile Coach",
		Avatar: avatarBase + "DavidW&backgroundColor=ffdfbf",
	},
	{
		Quote:  "We implemented their requirements system and saw a 40% reduction in scope creep. Our stakeholders love the clarity.",
		Name:   "Rebecca H.",
		Title:  "Project Director",
		Avatar: avatarBase + "RebeccaH&backgroundColor=d1d4f9",
	},
	{
		Quote:  "Their service bridged the gap between our business team and developers. Communication has never been smoother.",
		Name:   "Alex T.",
		Title:  "Software Architect",
		Avatar: avatarBase + "AlexT&backgroundColor=b6e3f4",
	},
	{
		Quote:  "The requirements they created were so thorough that our QA team was able to develop test cases directly from them. Incredible time-saver!",
		Name:   "Olivia K.",
		Title:  "QA Manager",
		Avatar: avatarBase + "OliviaK&backgroundColor=c0aede",
	},
}

// Testimonials returns a copy of the landing page quotes in display order.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)

	return out
}
