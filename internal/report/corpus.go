package report

import "github.com/mwerner/chakratest/internal/chakra"

// Corpus maps each chakra to its analysis text. Every text is a block
// of lines, one per life area, each prefixed with the area label and a
// colon. SplitAreas turns the block into sections.
type Corpus map[chakra.ID]string

// DefaultCorpus returns the built-in analysis corpus for the language,
// falling back to English for unknown languages.
func DefaultCorpus(lang chakra.Lang) Corpus {
	if lang == chakra.LangDE {
		return corpusDE
	}
	return corpusEN
}

var corpusEN = Corpus{
	chakra.Root: `Relationships: In your relationships, safety, stability and consistency matter most to you. You seek an environment that offers security and trust. When the root chakra is balanced, you give others a sense of grounding and are a dependable partner.
Career: Professionally you need clear structures and a solid foundation to feel at ease. You are persistent, practically minded and see projects through reliably. Change can unsettle you, so you prefer a secure working environment.
Health: Grounding and physical well-being come first for you. You quickly notice when stability is missing and react sensitively to stress. A healthy lifestyle and regular routines are essential to your well-being.
Personal Growth: You value meeting your basic needs and protecting yourself. For you, growth starts with a strong foundation and the feeling of being safely rooted.
Challenges: Fear of change, insecurity in unstable situations, a tendency to worry about livelihood and safety.
Competencies: Groundedness, perseverance, sense of responsibility, reliability, practical execution.`,

	chakra.Sacral: `Relationships: Emotional openness, closeness and intimacy are very important to you. You enjoy exchanging feelings and sharing emotions in relationships. A harmonious sacral chakra lets you experience passion and joy of life with others.
Career: Creativity and joy drive you to explore new paths. You are open to inspiration and bring momentum to the team. You flourish in creative professions or roles that call for flexibility.
Health: Your emotional well-being is closely tied to your physical health. You benefit from consciously enjoying pleasure and sensuality and treating yourself to small joys regularly.
Personal Growth: You strive to discover your passions and explore new forms of expression. Personal development means allowing feelings and unfolding creatively.
Challenges: Difficulty with emotional boundaries, fear of closeness or rejection, a tendency to mood swings.
Competencies: Creativity, openness, joy of life, sensuality, emotional intelligence, adaptability.`,

	chakra.SolarPlexus: `Relationships: You come across as self-assured in relationships and set clear boundaries. You know what you want and stand up for your needs. A strong solar plexus chakra lets you show up authentically and take responsibility.
Career: Determination, willpower and assertiveness set you apart. You face challenges with courage and gladly take the lead when it counts. Your ambition helps you pursue career goals consistently.
Health: Energy and vitality are your strengths. You quickly sense when your energy balance tips and know how important self-care is. Physical activity gives you strength and confidence.
Personal Growth: You keep developing your self-confidence and inner strength. For you, growth means acknowledging your power and using it deliberately.
Challenges: Excessive ambition, a need for control, difficulty with authority, fear of failure.
Competencies: Assertiveness, self-discipline, goal orientation, inner strength, willingness to take responsibility, motivation.`,

	chakra.Heart: `Relationships: Love, compassion and harmony shape your relationships. You are empathetic, put yourself in others' shoes easily and are ready to forgive. A balanced heart chakra allows deep connection and authentic closeness.
Career: You enjoy working in a team and foster an appreciative, supportive atmosphere. Cooperation and mutual help matter more to you than competition. You bring people together and create a good working climate.
Health: Emotional balance strengthens your heart and overall well-being. You notice how stress or interpersonal conflict can affect your heart and actively seek balance and harmony.
Personal Growth: You are open to healing and forgiveness, toward yourself as well as others. For you, personal growth means opening your heart and transforming old wounds.
Challenges: Excessive self-sacrifice, difficulty setting boundaries, fear of rejection.
Competencies: Empathy, compassion, teamwork, warmth, readiness to forgive, need for harmony.`,

	chakra.Throat: `Relationships: Honest, open and clear communication is especially important to you. You express your feelings and thoughts well and are an attentive listener. A harmonious throat chakra fosters trust and understanding in relationships.
Career: You convince through your expressiveness and can convey complex topics clearly. Presentations, writing or leading conversations come naturally to you. You find fulfillment in professions rich in communication.
Health: You pay attention to your voice, your throat and your expression. Tension in the neck or jaw can signal when you cannot express yourself freely.
Personal Growth: You develop your capacity for authentic self-expression and keep finding your own truth. For you, growth means showing yourself honestly and standing up for your convictions.
Challenges: Fear of rejection, holding back when expressing your own needs, difficulty with criticism.
Competencies: Communication skills, expressiveness, persuasiveness, authenticity, listening, verbal creativity.`,

	chakra.ThirdEye: `Relationships: Your pronounced intuition helps you understand other people deeply. You pick up on moods and unspoken signals and empathize easily. You trust your inner voice when dealing with others.
Career: You have a clear vision for your life and follow your inner guidance. Strategic thinking and imagination help you find innovative solutions. Professions that demand creativity and foresight suit you especially well.
Health: Mental clarity and an alert mind support your well-being. Meditation, mindfulness and visualization exercises help you stay in balance.
Personal Growth: You nurture your intuition and inner wisdom by paying attention to your dreams and hunches. For you, growth means trusting your inner guidance more and more.
Challenges: Doubting your own perception, feeling overwhelmed by too many impressions, difficulty putting visions into practice.
Competencies: Intuition, imagination, foresight, creativity, analytical thinking, openness to new perspectives.`,

	chakra.Crown: `Relationships: You feel connected to everything and everyone on a deep level. Spiritual values and a sense of unity shape your relationships. You are open to the diversity of life and meet others with tolerance.
Career: Spirituality, meaning and striving toward a higher goal guide your decisions. You look for work that gives your life significance and fulfills you. You inspire others through your wisdom and serenity.
Health: Mental equilibrium and inner calm strengthen your health. Retreat, meditation and contact with a higher power are important resources for you.
Personal Growth: You strive for unity, trust and a higher consciousness. For you, personal growth means connecting ever more with the greater whole and surrendering to the flow of life.
Challenges: A sense of alienation, escapism, difficulty integrating spiritual experiences into everyday life.
Competencies: Spirituality, wisdom, trust, inspiration, a sense for the bigger picture, serenity, openness to transcendence.`,
}

var corpusDE = Corpus{
	chakra.Root: `Beziehungen: In deinen Beziehungen sind dir Sicherheit, Stabilität und Beständigkeit besonders wichtig. Du strebst nach einem Umfeld, das dir Geborgenheit und Vertrauen schenkt. Wenn das Wurzelchakra ausgeglichen ist, kannst du anderen Halt geben und bist ein verlässlicher Partner.
Karriere: Beruflich brauchst du klare Strukturen und ein solides Fundament, um dich wohlzufühlen. Du bist ausdauernd, praktisch veranlagt und bringst Projekte zuverlässig zum Abschluss. Veränderungen können dich verunsichern, daher bevorzugst du eine sichere Arbeitsumgebung.
Gesundheit: Erdung und körperliches Wohlbefinden stehen für dich im Vordergrund. Du spürst schnell, wenn dir Stabilität fehlt, und reagierst sensibel auf Stress. Ein gesunder Lebensstil und regelmäßige Routinen sind für dein Wohlbefinden essenziell.
Persönliches Wachstum: Du legst Wert auf die Erfüllung deiner Grundbedürfnisse und Selbstschutz. Wachstum beginnt für dich mit einem starken Fundament und dem Gefühl, sicher verwurzelt zu sein.
Herausforderungen: Angst vor Veränderungen, Unsicherheit in instabilen Situationen, Tendenz zu Sorgen um Existenz und Sicherheit.
Kompetenzen: Bodenständigkeit, Durchhaltevermögen, Verantwortungsbewusstsein, Verlässlichkeit, praktische Umsetzungskraft.`,

	chakra.Sacral: `Beziehungen: Emotionale Offenheit, Nähe und Intimität sind dir sehr wichtig. Du genießt es, dich in Beziehungen auszutauschen und Gefühle zu teilen. Ein harmonisches Sakralchakra ermöglicht es dir, Leidenschaft und Lebensfreude mit anderen zu erleben.
Karriere: Kreativität und Freude treiben dich an, neue Wege zu gehen. Du bist offen für Inspiration und bringst Schwung ins Team. In kreativen Berufen oder Rollen, in denen Flexibilität gefragt ist, blühst du besonders auf.
Gesundheit: Dein emotionales Wohlbefinden steht in engem Zusammenhang mit deiner körperlichen Gesundheit. Du profitierst davon, Genuss und Sinnlichkeit bewusst zu erleben und dir regelmäßig kleine Freuden zu gönnen.
Persönliches Wachstum: Du bist bestrebt, deine Leidenschaften zu entdecken und neue Ausdrucksmöglichkeiten zu erforschen. Persönliche Entwicklung bedeutet für dich, Gefühle zuzulassen und dich kreativ zu entfalten.
Herausforderungen: Schwierigkeiten mit emotionaler Abgrenzung, Angst vor Nähe oder Ablehnung, Tendenz zu Stimmungsschwankungen.
Kompetenzen: Kreativität, Offenheit, Lebensfreude, Sinnlichkeit, emotionale Intelligenz, Anpassungsfähigkeit.`,

	chakra.SolarPlexus: `Beziehungen: Du trittst in Beziehungen selbstbewusst auf und setzt klare Grenzen. Du weißt, was du willst, und stehst für deine Bedürfnisse ein. Ein starkes Solarplexuschakra ermöglicht es dir, dich authentisch zu zeigen und Verantwortung zu übernehmen.
Karriere: Zielstrebigkeit, Willenskraft und Durchsetzungsvermögen zeichnen dich aus. Du gehst Herausforderungen mit Mut an und übernimmst gerne die Führung, wenn es darauf ankommt. Dein Ehrgeiz hilft dir, berufliche Ziele konsequent zu verfolgen.
Gesundheit: Energie und Vitalität sind deine Stärken. Du spürst schnell, wenn dein Energiehaushalt aus dem Gleichgewicht gerät, und weißt, wie wichtig Selbstfürsorge ist. Körperliche Aktivität gibt dir Kraft und Selbstvertrauen.
Persönliches Wachstum: Du entwickelst stetig dein Selbstbewusstsein und deine innere Stärke weiter. Wachstum bedeutet für dich, deine Macht anzuerkennen und gezielt einzusetzen.
Herausforderungen: Übermäßiger Ehrgeiz, Kontrollbedürfnis, Schwierigkeiten mit Autoritäten, Angst vor Versagen.
Kompetenzen: Durchsetzungsvermögen, Selbstdisziplin, Zielorientierung, innere Stärke, Verantwortungsbereitschaft, Motivation.`,

	chakra.Heart: `Beziehungen: Liebe, Mitgefühl und Harmonie prägen deine Beziehungen. Du bist einfühlsam, kannst dich gut in andere hineinversetzen und bist bereit zu vergeben. Ein ausgeglichenes Herzchakra ermöglicht tiefe Verbundenheit und authentische Nähe.
Karriere: Du arbeitest gerne im Team und förderst eine wertschätzende, unterstützende Atmosphäre. Zusammenarbeit und gegenseitige Hilfe sind dir wichtiger als Konkurrenzdenken. Du bringst Menschen zusammen und sorgst für ein gutes Betriebsklima.
Gesundheit: Emotionale Balance stärkt dein Herz und dein allgemeines Wohlbefinden. Du spürst, wie sich Stress oder zwischenmenschliche Konflikte auf dein Herz auswirken können, und suchst aktiv nach Ausgleich und Harmonie.
Persönliches Wachstum: Du bist offen für Heilung und Vergebung, sowohl dir selbst als auch anderen gegenüber. Persönliches Wachstum bedeutet für dich, dein Herz zu öffnen und alte Verletzungen zu transformieren.
Herausforderungen: Übermäßige Selbstaufopferung, Schwierigkeiten beim Setzen von Grenzen, Angst vor Zurückweisung.
Kompetenzen: Empathie, Mitgefühl, Teamfähigkeit, Herzlichkeit, Vergebungsbereitschaft, Harmoniebedürfnis.`,

	chakra.Throat: `Beziehungen: Ehrliche, offene und klare Kommunikation ist dir besonders wichtig. Du kannst deine Gefühle und Gedanken gut ausdrücken und bist ein aufmerksamer Zuhörer. Ein harmonisches Halschakra fördert Vertrauen und Verständnis in Beziehungen.
Karriere: Du überzeugst durch deine Ausdrucksstärke und kannst komplexe Themen verständlich vermitteln. Präsentationen, Schreiben oder das Führen von Gesprächen liegen dir. In Berufen mit viel Kommunikation findest du Erfüllung.
Gesundheit: Du achtest auf deine Stimme, deinen Hals und deinen Ausdruck. Spannungen im Nacken- oder Kieferbereich können dir zeigen, wenn du dich nicht frei ausdrücken kannst.
Persönliches Wachstum: Du entwickelst deine Fähigkeit zur authentischen Selbstdarstellung und findest immer mehr zu deiner eigenen Wahrheit. Wachstum bedeutet für dich, dich ehrlich zu zeigen und für deine Überzeugungen einzustehen.
Herausforderungen: Angst vor Ablehnung, Zurückhaltung beim Ausdrücken eigener Bedürfnisse, Schwierigkeiten mit Kritik.
Kompetenzen: Kommunikationsfähigkeit, Ausdrucksstärke, Überzeugungskraft, Authentizität, Zuhören, Kreativität im sprachlichen Bereich.`,

	chakra.ThirdEye: `Beziehungen: Deine ausgeprägte Intuition hilft dir, andere Menschen tief zu verstehen. Du nimmst Stimmungen und unausgesprochene Signale wahr und kannst dich gut in andere hineinversetzen. Du vertraust deiner inneren Stimme im Umgang mit anderen.
Karriere: Du hast eine klare Vision für dein Leben und folgst deiner inneren Führung. Strategisches Denken und Vorstellungskraft helfen dir, innovative Lösungen zu finden. Berufe, die Kreativität und Weitblick erfordern, liegen dir besonders.
Gesundheit: Geistige Klarheit und ein wacher Geist unterstützen dein Wohlbefinden. Meditation, Achtsamkeit und Visualisierungsübungen helfen dir, im Gleichgewicht zu bleiben.
Persönliches Wachstum: Du förderst deine Intuition und innere Weisheit, indem du auf deine Träume und Eingebungen achtest. Wachstum bedeutet für dich, immer mehr auf deine innere Führung zu vertrauen.
Herausforderungen: Zweifel an der eigenen Wahrnehmung, Überforderung durch zu viele Eindrücke, Schwierigkeiten, Visionen praktisch umzusetzen.
Kompetenzen: Intuition, Vorstellungskraft, Weitblick, Kreativität, analytisches Denken, Offenheit für neue Perspektiven.`,

	chakra.Crown: `Beziehungen: Du fühlst dich auf einer tiefen Ebene mit allem und jedem verbunden. Spirituelle Werte und ein Gefühl von Einheit prägen deine Beziehungen. Du bist offen für die Vielfalt des Lebens und begegnest anderen mit Toleranz.
Karriere: Spiritualität, Sinnhaftigkeit und das Streben nach einem höheren Ziel leiten deine Entscheidungen. Du suchst nach einer Tätigkeit, die deinem Leben Bedeutung gibt und dich erfüllt. Du inspirierst andere durch deine Weisheit und Gelassenheit.
Gesundheit: Geistiges Gleichgewicht und innere Ruhe stärken deine Gesundheit. Rückzug, Meditation und der Kontakt zu einer höheren Kraft sind für dich wichtige Ressourcen.
Persönliches Wachstum: Du strebst nach Einheit, Vertrauen und einem höheren Bewusstsein. Persönliches Wachstum bedeutet für dich, dich immer mehr mit dem großen Ganzen zu verbinden und dich dem Fluss des Lebens hinzugeben.
Herausforderungen: Gefühl der Entfremdung, Realitätsflucht, Schwierigkeiten, spirituelle Erfahrungen in den Alltag zu integrieren.
Kompetenzen: Spiritualität, Weisheit, Vertrauen, Inspiration, Sinn für das Große Ganze, Gelassenheit, Offenheit für Transzendenz.`,
}
