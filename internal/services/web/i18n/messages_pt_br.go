package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "title.landing", "%s | Encontre as pessoas certas para o seu próximo projeto")
	message.SetString(lang, "meta.description", "Cadastre-se como agente para mostrar suas habilidades, ou como cliente para encontrar os talentos que seu projeto precisa.")
	message.SetString(lang, "landing.heading", "Onde grandes projetos encontram grandes pessoas")
	message.SetString(lang, "landing.tagline", "Conte quem você é e do que precisa. Nós cuidamos das apresentações.")
	message.SetString(lang, "landing.agent.title", "Sou agente")
	message.SetString(lang, "landing.agent.body", "Monte um perfil com suas habilidades, valores e disponibilidade.")
	message.SetString(lang, "landing.agent.cta", "Entrar como agente")
	message.SetString(lang, "landing.client.title", "Sou cliente")
	message.SetString(lang, "landing.client.body", "Descreva seu projeto e os serviços que você procura.")
	message.SetString(lang, "landing.client.cta", "Entrar como cliente")

	message.SetString(lang, "nav.home", "Início")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	message.SetString(lang, "title.onboarding", "%s | Cadastro")
	message.SetString(lang, "wizard.heading.agent", "Crie seu perfil de agente")
	message.SetString(lang, "wizard.heading.client", "Conte sobre o seu projeto")
	message.SetString(lang, "wizard.progress", "Etapa %d de %d")
	message.SetString(lang, "wizard.next", "Continuar")
	message.SetString(lang, "wizard.prev", "Voltar")
	message.SetString(lang, "wizard.first", "Editar dados")
	message.SetString(lang, "wizard.submit", "Enviar perfil")
	message.SetString(lang, "wizard.submitting", "Enviando...")
	message.SetString(lang, "wizard.reset", "Recomeçar")
	message.SetString(lang, "wizard.optional", "opcional")
	message.SetString(lang, "wizard.done.heading", "Tudo certo")
	message.SetString(lang, "wizard.done.body", "Recebemos seu perfil. Referência: %s")
	message.SetString(lang, "wizard.done.home", "Voltar ao início")

	message.SetString(lang, "step.personal", "Dados pessoais")
	message.SetString(lang, "step.agent_details", "Detalhes do perfil")
	message.SetString(lang, "step.client_details", "Detalhes do projeto")
	message.SetString(lang, "step.conclusion", "Revisar e enviar")

	message.SetString(lang, "field.first_name", "Nome")
	message.SetString(lang, "field.last_name", "Sobrenome")
	message.SetString(lang, "field.email", "E-mail")
	message.SetString(lang, "field.phone", "Telefone")
	message.SetString(lang, "field.country", "País")
	message.SetString(lang, "field.bio", "Bio curta")
	message.SetString(lang, "field.skills", "Habilidades")
	message.SetString(lang, "field.industries", "Setores")
	message.SetString(lang, "field.rate_band", "Valor por hora")
	message.SetString(lang, "field.availability", "Disponibilidade")
	message.SetString(lang, "field.experience_level", "Nível de experiência")
	message.SetString(lang, "field.company_name", "Empresa")
	message.SetString(lang, "field.industry", "Setor")
	message.SetString(lang, "field.services_needed", "Serviços necessários")
	message.SetString(lang, "field.budget_band", "Orçamento")
	message.SetString(lang, "field.timeline", "Prazo")
	message.SetString(lang, "field.project_summary", "Resumo do projeto")
	message.SetString(lang, "field.social_links", "Redes sociais")
	message.SetString(lang, "field.profile_picture", "Foto de perfil")
	message.SetString(lang, "field.banner_image", "Imagem de capa")

	message.SetString(lang, "control.select", "Selecione uma opção")
	message.SetString(lang, "control.links.add", "Adicionar link")
	message.SetString(lang, "control.links.remove", "Remover")
	message.SetString(lang, "control.links.platform", "Plataforma")
	message.SetString(lang, "control.links.url", "URL")
	message.SetString(lang, "control.links.empty", "Nenhum link ainda.")
	message.SetString(lang, "control.attachment.current", "Arquivo atual: %s")
	message.SetString(lang, "control.attachment.clear", "Remover arquivo")
	message.SetString(lang, "review.empty", "Não informado")

	message.SetString(lang, "error.field.required", "Este campo é obrigatório.")
	message.SetString(lang, "error.field.email", "Informe um e-mail válido.")
	message.SetString(lang, "error.field.url", "Informe uma URL http ou https válida.")
	message.SetString(lang, "error.field.choice", "Escolha uma das opções listadas.")
	message.SetString(lang, "error.field.email_taken", "Já existe um perfil com este e-mail.")

	message.SetString(lang, "submit.success", "Perfil enviado com sucesso.")
	message.SetString(lang, "submit.failed", "Não foi possível salvar seu perfil. Revise os campos destacados.")
	message.SetString(lang, "submit.unavailable", "Não foi possível contatar o servidor. Tente novamente.")
	message.SetString(lang, "submit.incomplete", "Alguns dados obrigatórios estão faltando.")
	message.SetString(lang, "submit.duplicate", "Este e-mail já está cadastrado.")
	message.SetString(lang, "submit.in_flight", "Seu perfil já está sendo enviado.")
	message.SetString(lang, "submit.done", "Este perfil já foi enviado.")

	message.SetString(lang, "flash.reset", "Seu rascunho foi apagado.")
	message.SetString(lang, "flash.session_expired", "Sua sessão expirou, então começamos um novo rascunho.")

	message.SetString(lang, "title.error", "%s | Erro")
	message.SetString(lang, "error.heading", "Algo deu errado")
	message.SetString(lang, "error.not_found", "A página solicitada não existe.")
	message.SetString(lang, "error.form.parse", "Não foi possível ler o formulário enviado.")
	message.SetString(lang, "error.backend_unavailable", "Um serviço necessário está indisponível.")
	message.SetString(lang, "error.too_large", "O envio é grande demais.")
	message.SetString(lang, "error.internal", "Ocorreu um erro inesperado.")
}
