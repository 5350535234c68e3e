package intelligence

import (
	"strings"

	"github.com/yunqiwei/licheng/internal/domain"
)

// mentorSystemPrompt drives both career suggestions and deep research in the
// exploration mode.
const mentorSystemPrompt = `你是一位资深的职业生涯规划导师，深谙“计划性机缘”理论（SPT）。
你善于从一个人的独特性、所处平台、重要他人的期望以及偶然的机缘中，发现适合他的职业方向。
你的语气温暖、具体、不说空话，所有建议都要落到可执行的层面。
输出使用简体中文。`

const suggestFormatInstructions = `请先用一段话概括你对这位同学个人画像的整体分析，然后给出 3 到 5 个具体的职业方向建议。

在回答的最后，输出一个 ` + "```json" + ` 代码块，内容为：
{
  "summary": "对画像的一句话总结",
  "suggestions": [
    {"title": "职业方向名称", "reason": "为什么适合他，结合画像中的具体信息"}
  ]
}
代码块之外不要再出现任何 JSON。`

const researchFormatInstructions = `请生成一份结构完整的职业研究报告，依次包含：
一、职业概述与日常工作内容
二、行业发展现状与竞争格局
三、核心能力与素质要求
四、典型成长路径与薪酬水平
五、与这位同学个人画像的匹配度分析

在报告最后，输出一个 ` + "```json" + ` 代码块，内容为图表数据：
{
  "salary_range": [
    {"level": "初级", "low": 数字, "high": 数字},
    {"level": "中级", "low": 数字, "high": 数字},
    {"level": "高级", "low": 数字, "high": 数字}
  ],
  "skill_importance": [
    {"skill": "能力名称", "importance": 1到10的数字}
  ]
}
薪酬单位为千元每月。代码块之外不要再出现任何 JSON。`

// coachSystemPrompt drives validation plan design and feedback analysis in
// the decision mode.
const coachSystemPrompt = `你是一位职业决策教练。你不替用户做决定，而是帮助他们通过低成本的现实检验来验证自己的职业假设。
你设计的检验方案必须具体到行动：访谈谁、做什么微实习、完成什么小项目、观察什么信号。
分析用户的检验反馈时，你关注事实与感受的区分，并给出“继续投入、调整方向、暂停观望”三类明确建议之一。
输出使用简体中文。`

// plannerSystemPrompt drives action blueprint generation in the planning mode.
const plannerSystemPrompt = `你是一位大学生行动规划师。你把一个已经确认的职业目标拆解成大学期间可以逐步完成的行动蓝图。
蓝图分为三条线：学业准备（课程、成绩、升学）、实践准备（实习、项目、作品集）、能力准备（技能、证书、社团与人脉）。
每条线都要给出按时间排列的具体事项。
输出使用简体中文。`

const planFormatInstructions = `请先用一段话说明这份蓝图的总体思路，然后输出一个 ` + "```json" + ` 代码块：
{
  "plan_details": "总体思路概述",
  "academic": "学业准备的分阶段清单",
  "practice": "实践准备的分阶段清单",
  "skills": "能力准备的分阶段清单"
}
代码块之外不要再出现任何 JSON。`

// navigatorSystemPrompt drives the trends mode.
const navigatorSystemPrompt = `你是一位职业趋势领航员。你基于最新的搜索资料，分析某个职业在技术变革、行业环境和职业观念三个维度上的未来走向。
你会明确指出哪些变化是确定的、哪些是可能的，并说明这对一个正在为此目标做准备的大学生意味着什么。
输出使用简体中文。`

// buildProfileBlock renders the user profile section shared by several prompts.
func buildProfileBlock(profile *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("## 我的个人画像\n")
	b.WriteString(profile.PromptJSON())
	b.WriteString("\n")
	return b.String()
}

// buildFindingsBlock renders search findings for grounding. The findings text
// is already assembled by the caller; an empty string yields no block.
func buildFindingsBlock(findings string) string {
	if strings.TrimSpace(findings) == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("## 最新搜索资料\n")
	b.WriteString(findings)
	b.WriteString("\n")
	return b.String()
}

func buildSuggestUserPrompt(profile *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(buildProfileBlock(profile))
	b.WriteString("\n请基于以上画像，为我分析并推荐职业方向。\n\n")
	b.WriteString(suggestFormatInstructions)
	return b.String()
}

func buildResearchUserPrompt(profile *domain.UserProfile, targetName, findings string) string {
	var b strings.Builder
	b.WriteString(buildProfileBlock(profile))
	b.WriteString(buildFindingsBlock(findings))
	b.WriteString("\n请深入研究“")
	b.WriteString(targetName)
	b.WriteString("”这个职业。\n\n")
	b.WriteString(researchFormatInstructions)
	return b.String()
}

func buildValidationUserPrompt(target *domain.CareerTarget) string {
	var b strings.Builder
	b.WriteString("## 职业目标\n")
	b.WriteString(target.Name)
	b.WriteString("\n\n## 此前的研究报告\n")
	b.WriteString(target.ResearchReport)
	b.WriteString("\n\n请为这个目标设计一套低成本的现实检验方案。")
	return b.String()
}

func buildFeedbackUserPrompt(target *domain.CareerTarget, feedback string) string {
	var b strings.Builder
	b.WriteString("## 职业目标\n")
	b.WriteString(target.Name)
	b.WriteString("\n\n## 检验方案\n")
	b.WriteString(target.ValidationPlan)
	b.WriteString("\n\n## 我的检验反馈\n")
	b.WriteString(feedback)
	b.WriteString("\n\n请分析这份反馈，并给出下一步建议。")
	return b.String()
}

func buildPlanUserPrompt(profile *domain.UserProfile, target *domain.CareerTarget) string {
	var b strings.Builder
	b.WriteString(buildProfileBlock(profile))
	b.WriteString("\n## 已确认的职业目标\n")
	b.WriteString(target.Name)
	if target.ResearchReport != "" {
		b.WriteString("\n\n## 此前的研究报告\n")
		b.WriteString(target.ResearchReport)
	}
	b.WriteString("\n\n请为这个目标生成大学期间的行动蓝图。\n\n")
	b.WriteString(planFormatInstructions)
	return b.String()
}

func buildTrendsUserPrompt(target *domain.CareerTarget, findings string) string {
	var b strings.Builder
	b.WriteString("## 职业目标\n")
	b.WriteString(target.Name)
	b.WriteString("\n\n")
	b.WriteString(buildFindingsBlock(findings))
	b.WriteString("\n请生成一份关于“")
	b.WriteString(target.Name)
	b.WriteString("”的未来趋势洞察报告。")
	return b.String()
}
