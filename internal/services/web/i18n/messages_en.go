package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Landing page
	message.SetString(lang, "title.landing", "%s | Find the right people for your next project")
	message.SetString(lang, "meta.description", "Join as an agent to showcase your skills, or as a client to find the talent your project needs.")
	message.SetString(lang, "landing.heading", "Where great projects meet great people")
	message.SetString(lang, "landing.tagline", "Tell us who you are and what you need. We take care of the introductions.")
	message.SetString(lang, "landing.agent.title", "I am an agent")
	message.SetString(lang, "landing.agent.body", "Build a profile with your skills, rates, and availability.")
	message.SetString(lang, "landing.agent.cta", "Join as an agent")
	message.SetString(lang, "landing.client.title", "I am a client")
	message.SetString(lang, "landing.client.body", "Describe your project and the services you are looking for.")
	message.SetString(lang, "landing.client.cta", "Join as a client")

	// Navigation
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Wizard
	message.SetString(lang, "title.onboarding", "%s | Onboarding")
	message.SetString(lang, "wizard.heading.agent", "Create your agent profile")
	message.SetString(lang, "wizard.heading.client", "Tell us about your project")
	message.SetString(lang, "wizard.progress", "Step %d of %d")
	message.SetString(lang, "wizard.next", "Continue")
	message.SetString(lang, "wizard.prev", "Back")
	message.SetString(lang, "wizard.first", "Edit details")
	message.SetString(lang, "wizard.submit", "Submit profile")
	message.SetString(lang, "wizard.submitting", "Submitting...")
	message.SetString(lang, "wizard.reset", "Start over")
	message.SetString(lang, "wizard.optional", "optional")
	message.SetString(lang, "wizard.done.heading", "You are all set")
	message.SetString(lang, "wizard.done.body", "Your profile was received. Reference: %s")
	message.SetString(lang, "wizard.done.home", "Back to home")

	// Steps
	message.SetString(lang, "step.personal", "Personal details")
	message.SetString(lang, "step.agent_details", "Profile details")
	message.SetString(lang, "step.client_details", "Project details")
	message.SetString(lang, "step.conclusion", "Review and submit")

	// Field labels
	message.SetString(lang, "field.first_name", "First name")
	message.SetString(lang, "field.last_name", "Last name")
	message.SetString(lang, "field.email", "Email")
	message.SetString(lang, "field.phone", "Phone")
	message.SetString(lang, "field.country", "Country")
	message.SetString(lang, "field.bio", "Short bio")
	message.SetString(lang, "field.skills", "Skills")
	message.SetString(lang, "field.industries", "Industries")
	message.SetString(lang, "field.rate_band", "Hourly rate")
	message.SetString(lang, "field.availability", "Availability")
	message.SetString(lang, "field.experience_level", "Experience level")
	message.SetString(lang, "field.company_name", "Company name")
	message.SetString(lang, "field.industry", "Industry")
	message.SetString(lang, "field.services_needed", "Services needed")
	message.SetString(lang, "field.budget_band", "Budget")
	message.SetString(lang, "field.timeline", "Timeline")
	message.SetString(lang, "field.project_summary", "Project summary")
	message.SetString(lang, "field.social_links", "Social links")
	message.SetString(lang, "field.profile_picture", "Profile picture")
	message.SetString(lang, "field.banner_image", "Banner image")

	// Controls
	message.SetString(lang, "control.select", "Select an option")
	message.SetString(lang, "control.links.add", "Add link")
	message.SetString(lang, "control.links.remove", "Remove")
	message.SetString(lang, "control.links.platform", "Platform")
	message.SetString(lang, "control.links.url", "URL")
	message.SetString(lang, "control.links.empty", "No links yet.")
	message.SetString(lang, "control.attachment.current", "Current file: %s")
	message.SetString(lang, "control.attachment.clear", "Remove file")
	message.SetString(lang, "review.empty", "Not provided")

	// Validation
	message.SetString(lang, "error.field.required", "This field is required.")
	message.SetString(lang, "error.field.email", "Enter a valid email address.")
	message.SetString(lang, "error.field.url", "Enter a valid http or https URL.")
	message.SetString(lang, "error.field.choice", "Choose one of the listed options.")
	message.SetString(lang, "error.field.email_taken", "A profile with this email already exists.")

	// Submission
	message.SetString(lang, "submit.success", "Profile submitted successfully.")
	message.SetString(lang, "submit.failed", "We could not save your profile. Please review the highlighted fields.")
	message.SetString(lang, "submit.unavailable", "We could not reach the server. Please try again.")
	message.SetString(lang, "submit.incomplete", "Some required details are missing.")
	message.SetString(lang, "submit.duplicate", "This email is already registered.")
	message.SetString(lang, "submit.in_flight", "Your profile is already being submitted.")
	message.SetString(lang, "submit.done", "This profile was already submitted.")

	// Flash notices
	message.SetString(lang, "flash.reset", "Your draft was cleared.")
	message.SetString(lang, "flash.session_expired", "Your session expired, so we started a new draft.")

	// Errors
	message.SetString(lang, "title.error", "%s | Error")
	message.SetString(lang, "error.heading", "Something went wrong")
	message.SetString(lang, "error.not_found", "The page you requested does not exist.")
	message.SetString(lang, "error.form.parse", "The submitted form could not be read.")
	message.SetString(lang, "error.backend_unavailable", "A required service is unavailable.")
	message.SetString(lang, "error.too_large", "The upload is too large.")
	message.SetString(lang, "error.internal", "An unexpected error occurred.")
}
