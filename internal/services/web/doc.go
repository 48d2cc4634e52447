// Package web serves the onboarding site: the landing page, the agent and
// client wizards, the option catalog API and the embedded assets.
package web
