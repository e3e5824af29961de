package rag

// Category pairs a retrieval query with the prompt template that turns the
// retrieved context into reader-ready newspaper copy. Every category
// carries both so a summarize run always produces one record per category
// per locality.
type Category struct {
	Key      string
	Query    string
	Template string
}

// Common writing guidelines appended to every category prompt.
const commonInstructions = `
IMPORTANT WRITING GUIDELINES:
- Write directly for newspaper readers, not as an analysis of the text
- Use confident, declarative statements only
- Do NOT mention limitations like "text is limited", "details not provided", "may have occurred"
- Do NOT use hedging language like "potentially", "suggests", "implies"
- If you need more details, simply end with: "For additional details, refer to the local newspaper." at the end of the summary.
- Write in active voice and present factual information as facts
- Do not mention the source text or analysis process
- Write everything as detailed as possible.`

// Catalog returns the categories in a fixed order, one summary record each
// per locality per run.
func Catalog() []Category {
	return []Category{
		{
			Key: "community_social",
			Query: `Community engagement activities social initiatives volunteer programs civic participation
resident associations neighborhood groups charitable drives fundraising events community service
social gatherings networking events community building efforts local activism environmental cleanup
beach cleanup drives tree plantation community outreach programs social welfare initiatives
community meetings neighborhood watch programs local committees community development projects
social responsibility programs community partnerships collaborative efforts grassroots movements
community organizing resident participation civic duties community involvement social causes`,
			Template: `Based on the following local newspaper content, generate a headline and detailed summary focusing on community and social initiatives:

Context: {{.context}}

Please provide:
1. A compelling headline (max 80 characters)
2. A detailed overview of the key community activities, volunteer efforts, or social programs (no limit on max characters).
3. Key participants, dates, and impact mentioned

Focus on: Clean-ups, charitable drives, resident association activities, civic engagement, community programs and similar stuff.
` + commonInstructions,
		},
		{
			Key: "infrastructure_news",
			Query: `Infrastructure development road construction bridge projects transportation systems municipal services
water supply sewage systems electricity grid metro rail projects highway development urban planning
government schemes policy announcements public services municipal updates civic amenities
smart city initiatives digital infrastructure telecommunications connectivity internet services
public transportation bus routes traffic management parking facilities waste management
construction projects building permits development approvals zoning regulations urban development
public facilities hospitals schools government buildings parks recreation centers libraries`,
			Template: `Based on the following local newspaper content, summarize infrastructure and general news:

Context: {{.context}}

Please provide:
1. A clear headline (max 80 characters)
2. A summary of infrastructure updates, government schemes, or municipal services (no limit on max characters).
3. Timeline and impact on residents

Focus on: Road projects, municipal services, government schemes, neighborhood developments and similar stuff.
` + commonInstructions,
		},
		{
			Key: "cultural_events",
			Query: `Cultural festivals music concerts dance performances theater shows art exhibitions cultural programs
traditional celebrations religious festivals seasonal festivities community celebrations
artistic performances cultural workshops heritage events folk music classical music contemporary arts
storytelling sessions literary events book fairs poetry readings cultural diversity programs
temple festivals religious ceremonies cultural exchange programs artistic collaborations
creative workshops painting exhibitions sculpture displays photography contests film screenings
cultural heritage preservation traditional arts handicrafts cultural education programs
performing arts venues cultural centers community theaters art galleries museums`,
			Template: `Based on the following local newspaper content, summarize cultural and arts events:

Context: {{.context}}

Please provide:
1. An engaging headline (max 80 characters)
2. A summary highlighting cultural activities and events (no limit on max characters).
3. Dates, venues, and participation details

Focus on: Festivals, music/dance events, theater, storytelling sessions, temple festivals and similar stuff.
` + commonInstructions,
		},
		{
			Key: "health_education",
			Query: `Health camps medical checkups vaccination drives health awareness programs wellness workshops
educational seminars training programs skill development workshops health screenings
dental camps eye checkups cardiac health programs women's health initiatives child health programs
mental health awareness nutrition education fitness programs yoga sessions meditation workshops
health insurance information medical assistance programs preventive healthcare initiatives
environmental health programs sanitation awareness water quality education air quality monitoring
educational institutions schools colleges universities academic programs learning opportunities
professional development training certification programs capacity building workshops knowledge sharing`,
			Template: `Based on the following local newspaper content, summarize health, environment, and education initiatives:

Context: {{.context}}

Please provide:
1. An informative headline (max 80 characters)
2. A summary of health camps, workshops, or educational programs (no limit on max characters).
3. Key benefits and participation details

Focus on: Health camps, awareness sessions, workshops, educational programs and similar stuff.
` + commonInstructions,
		},
		{
			Key: "lifestyle_commerce",
			Query: `Shopping centers retail stores boutiques fashion outlets seasonal sales promotional offers
commercial establishments business openings restaurant launches food festivals culinary events
lifestyle brands product launches consumer goods services marketplace activities
local businesses entrepreneurship startups small business initiatives commerce updates
retail developments shopping complexes malls market trends consumer preferences
service providers professional services beauty salons fitness centers recreational facilities
hospitality industry hotels guest houses tourism services entertainment venues
lifestyle trends wellness services personal care health and beauty fashion and style`,
			Template: `Based on the following local newspaper content, summarize lifestyle and commerce updates:

Context: {{.context}}

Please provide:
1. An engaging headline (max 80 characters)
2. A summary of shop openings, restaurant launches, seasonal sales, and local business activity (no limit on max characters).
3. Notable offers, venues, and trends mentioned

Focus on: Retail openings, food and dining, promotional offers, local businesses, services and similar stuff.
` + commonInstructions,
		},
		{
			Key: "classifieds_marketplace",
			Query: `Real estate property sales rental listings house for sale apartment rentals commercial properties
job opportunities employment vacancies career opportunities recruitment drives hiring announcements
used goods second hand items buy sell exchange marketplace transactions classified advertisements
business opportunities investment opportunities partnership proposals franchise opportunities
services offered professional services domestic help tutoring services repair services
automotive vehicles for sale car rentals vehicle services transportation services
personal announcements relationship matrimonial missing persons found items lost and found
wanted listings requirements seeking services looking for accommodation roommate search`,
			Template: `Based on the following local newspaper content, summarize classified advertisements and marketplace notices:

Context: {{.context}}

Please provide:
1. A clear headline (max 80 characters)
2. A summary of classified advertisements, marketplace listings, and commercial notices (no limit on max characters).
3. Key categories of listings and notable trends

Focus on: Real estate listings, job postings (situation vacant), used goods for sale, rental properties, services offered, business opportunities and similar marketplace content.

Note: Provide general trends and categories rather than specific personal details or contact information.
` + commonInstructions,
		},
		{
			Key: "obituaries_personal",
			Query: `Death announcements obituary notices memorial services funeral arrangements remembrance ceremonies
condolence messages family announcements personal tributes life celebrations memorial events
bereavement support grief counseling memorial donations charitable contributions in memory
funeral homes crematorium services burial services religious ceremonies last rites
family notices personal announcements birth announcements wedding announcements anniversary celebrations
graduation ceremonies achievements recognitions awards honors personal milestones
community sympathy support for bereaved families memorial funds legacy projects
personal remembrances tribute articles life stories community support during difficult times`,
			Template: `Based on the following local newspaper content, summarize obituaries and personal notices with appropriate sensitivity:

Context: {{.context}}

Please provide:
1. A respectful headline (max 80 characters)
2. A sensitive summary of personal notices and community remembrances (no limit on max characters).
3. General information about community impact or notable contributions

Focus on: Obituary announcements, memorial notices, family remembrances, community tributes and similar personal notices.

Note: Maintain dignity and respect in all summaries. Focus on community aspects rather than specific personal details.
` + commonInstructions,
		},
		{
			Key: "general_weekly",
			Query: `Weekly news summary local happenings community updates neighborhood events municipal announcements
government notifications public notices important deadlines upcoming events calendar updates
weather updates seasonal information emergency notifications safety alerts security updates
traffic advisories route diversions construction notices public transportation updates
utility services power outages water supply interruptions maintenance schedules service updates
community announcements public meetings council meetings civic updates policy changes
local business news economic developments commercial activities industrial updates
social issues community concerns resident feedback public opinion local governance administrative updates`,
			Template: `Based on the following local newspaper content, create a comprehensive weekly summary:

Context: {{.context}}

Please provide:
1. A comprehensive headline (max 80 characters)
2. A summary covering the key happenings across all categories. Be as detailed as possible. (no limit on max characters).
3. Most important developments affecting residents

Include: All significant news, events, and announcements from the week.
` + commonInstructions,
		},
	}
}
