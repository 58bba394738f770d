package bank

// seedDE is the built-in German question bank, fixed encoding like
// seedEN.
var seedDE = RawBank{
	Lang: "de",
	Questions: []RawQuestion{
		{
			Prompt:   "1. Wähle die Aussage, mit der du dich am meisten identifizierst.",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Das Leben ist eine Gelegenheit, etwas Solides zu erschaffen – geduldig und fleißig Stabilität, Erdung und innere Ruhe zu etablieren.",
				"b": "Die Welt ist voller Abenteuer und Möglichkeiten. Wir sind hier, um so viele davon wie möglich zu erleben.",
				"c": "Das Leben ist eine Chance, das Beste aus uns herauszuholen, Erfolgsgeschichten zu schreiben und als Sieger hervorzugehen.",
				"d": "Die Welt ist ein Raum für emotionale Bindung, und wir sind hier, um unser höchstes Potenzial als Liebe in menschlicher Form zu entfalten.",
				"e": "Das Leben bietet die Möglichkeit, unsere Botschaft zu entdecken, unsere wahre Stimme auszudrücken und das Leben anderer zu beeinflussen.",
				"f": "Die Welt ist ein Ort endlosen Lernens und Wissens, und unsere Aufgabe ist es, unsere Intelligenz und unser Verständnis maximal zu erweitern.",
				"g": "Das Leben ist eine Gelegenheit für eine tiefe innere Reise spiritueller Befreiung und Transzendenz.",
			},
		},
		{
			Prompt:   "2. Welcher Teil von dir ist am aktivsten?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Der irdische, geerdete und instinktive Teil meines Wesens.",
				"b": "Meine Gefühle, Impulse und die Intelligenz meines Körpers.",
				"c": "Mein Wille und mein Ehrgeiz.",
				"d": "Meine tiefe Gefühlswelt.",
				"e": "Meine Stimme, mein Ausdruck und meine Kommunikation.",
				"f": "Mein Geist und Intellekt.",
				"g": "Der spirituelle Teil meines Wesens.",
			},
		},
		{
			Prompt:   "3. Bei welchem Bild hast du sofort das Gefühl, am richtigen Ort zu sein?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Ein schönes Haus, ein Garten und fruchtbares Land.",
				"b": "Jemand tanzt in ekstatischer Trance auf einer Party.",
				"c": "Einen Berg erklimmen und fast den Gipfel erreichen.",
				"d": "Zwei Hände, die sich liebevoll ineinander verschlingen.",
				"e": "Ein Redner in einem großen Hörsaal vor vielen Menschen.",
				"f": "Eine Bibliothek mit einem einsamen Schreibenden, vertieft in seine Welt.",
				"g": "Ein Mönch in tiefer Meditation.",
			},
		},
		{
			Prompt:   "4. Meine ideale Art, mein Sein mit anderen zu teilen, ist…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Mit meinen Fähigkeiten meiner Familie und Gemeinschaft zu dienen.",
				"b": "Spaß haben, lachen, tanzen und körperliche sowie sinnliche Freude erleben.",
				"c": "Gemeinsam mit anderen mit Einsatz und Entschlossenheit auf ein Ziel hinarbeiten.",
				"d": "Ein persönliches, intimes Miteinander, bei dem wir unsere Herzen öffnen.",
				"e": "Andere anleiten oder gemeinsam eine große Vision entwickeln.",
				"f": "Ein tiefgründiges philosophisches Gespräch mit einer nachdenklichen Person.",
				"g": "Meditieren, beten und einfach mit anderen spirituell orientierten Menschen sein.",
			},
		},
		{
			Prompt:   "5. Die schönste Art, meine Zeit zu verbringen, ist…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Kleine Handlungen und Pläne umsetzen, die das Leben in Ordnung und Balance bringen.",
				"b": "Draußen sein, mich bewegen und den Moment tief in mich aufnehmen.",
				"c": "Sicherstellen, dass alles, was ich tue, mich meinem Ziel näherbringt.",
				"d": "Jemandem helfen und für sein Glück sorgen.",
				"e": "Eine Botschaft schreiben oder aufnehmen, die das Leben anderer verändern kann.",
				"f": "Mich in ein Buch eines großen Philosophen vertiefen.",
				"g": "Ein Video eines spirituellen oder religiösen Lehrers anschauen.",
			},
		},
		{
			Prompt:   "6. Seit meiner Kindheit ist meine Hauptverbindung zur Welt…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Meine Suche nach Zugehörigkeit und meine Rolle in den Systemen der Welt.",
				"b": "Verspieltheit und Experimentierfreude.",
				"c": "Siegen in Wettbewerben und anderen Situationen.",
				"d": "Starke Gefühle für bestimmte Menschen.",
				"e": "Andere zu unterrichten und anzuleiten.",
				"f": "Distanzierte Beobachtung und stilles inneres Forschen.",
				"g": "Gleichgültigkeit und Nichtzugehörigkeit.",
			},
		},
		{
			Prompt:   "7. Andere würden sagen, ich bin…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Fleißig, ernst, verantwortungsbewusst, vorsichtig und genau.",
				"b": "Unruhig, leidenschaftlich, humorvoll und immer auf der Suche nach neuen Erlebnissen.",
				"c": "Ehrgeizig, zielstrebig, fokussiert, beschäftigt und wettbewerbsorientiert.",
				"d": "Emotional, sensibel, fürsorglich, hilfsbereit und herzlich.",
				"e": "Neugierig, kontrollierend, idealistisch und ausdrucksstark.",
				"f": "Weise, still, distanziert, tiefgründig und aufmerksam.",
				"g": "Spirituell, introvertiert, weltentrückt, sanft und verträumt.",
			},
		},
		{
			Prompt:   "8. Im Herzen bin ich ein…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Arbeiter.",
				"b": "Tänzer.",
				"c": "Kämpfer.",
				"d": "Liebender.",
				"e": "Kommunikator.",
				"f": "Philosoph.",
				"g": "Meditierender.",
			},
		},
		{
			Prompt:   "9. Ich bin…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Langsam und vorsichtig.",
				"b": "Schnell und spontan.",
				"c": "Ausdauernd und entschlossen.",
				"d": "Sanft und harmonisch.",
				"e": "Intensiv und mitreißend.",
				"f": "Distanziert und beobachtend.",
				"g": "Verträumt und abgehoben.",
			},
		},
		{
			Prompt:   "10. Welches Wort spricht dich am meisten an?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Grundlage.",
				"b": "Leidenschaft.",
				"c": "Sieg.",
				"d": "Liebe.",
				"e": "Vision.",
				"f": "Weisheit.",
				"g": "Stille.",
			},
		},
		{
			Prompt:   "11. Welches Gebäude klingt für dich am interessantesten und beeindruckendsten?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Ein Museum für Geschichte.",
				"b": "Ein verspieltes, künstlerisches Gebäude.",
				"c": "Ein Wolkenkratzer.",
				"d": "Ein Zufluchtsort für Bedürftige.",
				"e": "Ein Parlamentssaal.",
				"f": "Eine Universität.",
				"g": "Ein Ashram oder Kloster.",
			},
		},
		{
			Prompt:   "12. Wenn ich diese Welt verlasse, möchte ich wissen, dass…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Ich meiner Familie, Gemeinschaft und den Menschen geholfen und etwas beigetragen habe.",
				"b": "Ich das Leben vollkommen erfahren und es voll zugelassen habe.",
				"c": "Ich die höchsten Ziele erreicht habe, die ich mir gesetzt habe.",
				"d": "Ich stark genug geliebt habe.",
				"e": "Ich ein Vermächtnis von Einfluss und Wirkung hinterlassen habe.",
				"f": "Ich einige der verborgenen Geheimnisse des Lebens verstanden habe.",
				"g": "Ich meinen innersten Geist erfahren habe.",
			},
		},
		{
			Prompt:   "13. Welche dieser negativen Eigenschaften trifft am ehesten auf dich zu?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Übervorsicht.",
				"b": "Mangel an Engagement.",
				"c": "Wut.",
				"d": "Bedürftigkeit.",
				"e": "Kontrollbedürfnis.",
				"f": "Arroganz.",
				"g": "Distanzierung.",
			},
		},
		{
			Prompt:   "14. Wie fühlst du dich, wenn du folgende Aussage liest? „Ich liebe es, mich mit Details zu beschäftigen – Berechnungen und Zahlen, Materialien und genaue Planung, Informationen und Zeitpläne.“",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Ja! Stimme ich voll zu.",
				"b": "Nein, Details machen mich verrückt. Ich liebe es, nichts zu tun!",
				"c": "Ja, aber nur, wenn es zu einem klaren und kraftvollen Ziel führt.",
				"d": "Ja, aber nur, wenn es jemandem hilft, den ich liebe.",
				"e": "Nein, ich springe lieber direkt zur Vision am Rand meiner Vorstellungskraft.",
				"f": "Nein, kleine Details haben für mich keine Tiefe oder Intelligenz.",
				"g": "Nein, das irdische Leben hat für mich keine spirituelle Bedeutung.",
			},
		},
		{
			Prompt:   "15. Wenn eine überwältigende negative Emotion in mir aufkommt, dann…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Tue ich alles, um mich zu beruhigen und wieder zusammenzusetzen.",
				"b": "Ich werde eins mit ihr, erlebe sie total und kehre dann schnell zur Freude zurück.",
				"c": "Lasse ich es an meiner Umgebung aus.",
				"d": "Werde ich überwältigt und habe Mühe, sie in Harmonie zu verwandeln.",
				"e": "Versuche ich, sie zu kontrollieren und zu unterdrücken.",
				"f": "Untersuche ich sie wie ein Wissenschaftler.",
				"g": "Meditiere ich.",
			},
		},
		{
			Prompt:   "16. Wie sehr magst du Veränderungen und Mobilität im Leben (im Gegensatz zu Routine und Beständigkeit)?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Große Veränderungen verunsichern mich. Ich bevorzuge langsame und allmähliche Veränderung.",
				"b": "Veränderung ist mein zweiter Vorname. Ich kann keine Routine ertragen!",
				"c": "Ich mag keine Störungen, aber ich weiß, wie ich sie in meine Pläne einbaue.",
				"d": "Veränderungen sind ok, solange ich alle meine Liebsten bei mir behalten kann.",
				"e": "Ich werde verwirrt, wenn sich Dinge ändern und mit meinem inneren Traum kollidieren.",
				"f": "Ich schaffe mir lieber Routinen, um geistige Tiefe zu erforschen.",
				"g": "Ich initiiere keine Veränderungen, aber ich akzeptiere sie als göttlichen Willen.",
			},
		},
		{
			Prompt:   "17. Wie würdest du deinen Energie-Typ und dein Energie-Level beschreiben?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Langsam und ausdauernd, wie eine kleine Flamme.",
				"b": "Schnell, sprunghaft und körperlich, wie eine Fackel.",
				"c": "Massiv und kompromisslos, wie ein Bulldozer.",
				"d": "Sanft und weich, wie eine Brise.",
				"e": "Intensiv und wach.",
				"f": "Hauptsächlich im Kopf konzentriert, wenig körperlich.",
				"g": "Luftig, wie Schweben.",
			},
		},
		{
			Prompt:   "18. Ich fühle mich am lebendigsten, wenn…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Ich den inneren Mechanismus von etwas verstehe.",
				"b": "Ich mich kreativ ausdrücke.",
				"c": "Ich Hindernisse beseitige und einen Schritt vorankomme.",
				"d": "Ich in Intimität und Verbundenheit bin.",
				"e": "Ich das Leben anderer beeinflussen kann.",
				"f": "Ich neue, brillante Einsichten habe.",
				"g": "Ich in tiefe Bewusstseinszustände eintauche.",
			},
		},
		{
			Prompt:   "19. Wie fühlst du dich, wenn du folgende Aussage liest? „Ich will die Welt verändern!“",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "So große Ambitionen habe ich nicht. Ich möchte aber wissen, dass ich anderen und meiner Gemeinschaft geholfen habe.",
				"b": "Ganz und gar nicht. Ich will einfach ich selbst sein und das kreativ und authentisch ausdrücken.",
				"c": "Ich will die Welt erobern!",
				"d": "Ich verbreite einfach Liebe mit ganzem Herzen. Was passiert, passiert.",
				"e": "Ja – indem ich Ideen, Visionen und Kreationen verbreite, träume ich von globalem Einfluss.",
				"f": "Meine Gedanken sind zu tief, um die breite Masse zu erreichen.",
				"g": "Globale Veränderung ist nicht mein Thema. Ich beschäftige mich nur mit dem Ewigen.",
			},
		},
		{
			Prompt:   "20. Welche Farbe entspricht am ehesten deinem innersten Wesen (nicht deiner „Lieblingsfarbe“)?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Tiefes Rot.",
				"b": "Spritziges Orange.",
				"c": "Strahlendes Gelb.",
				"d": "Sanftes, helles Grün.",
				"e": "Tiefes, intensives Blau.",
				"f": "Üppiges, mystisches Violett.",
				"g": "Helles Weiß; farblos.",
			},
		},
		{
			Prompt:   "21. Wähle deine wichtigsten Werte.",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Respekt, Loyalität, Geduld.",
				"b": "Freude, Ganzheit, Schönheit.",
				"c": "Mut, Ausdauer, Würde.",
				"d": "Mitgefühl, Freundschaft, Harmonie.",
				"e": "Authentizität, Autonomie, Selbstausdruck.",
				"f": "Intelligenz, Klarheit, Tiefe.",
				"g": "Reinheit, Loslösung, Freiheit.",
			},
		},
		{
			Prompt:   "22. Wie fühlst du dich, wenn du folgende Aussage liest? „Ich liebe es, Teil einer größeren Einheit wie Tradition, Familie, Gemeinschaft oder Nation zu sein. Es fühlt sich gesund und unterstützend an.“",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Absolut zutreffend.",
				"b": "Überhaupt nicht! Ich meide Rahmen, die meine Freiheit einschränken.",
				"c": "Ich schätze Strukturen, aber am wichtigsten ist es, herauszustechen und ich selbst zu sein.",
				"d": "Strukturen sind wunderbar, solange sie Gelegenheiten für Liebe sind.",
				"e": "Ich interessiere mich mehr für meine Träume von besseren, sogar utopischen Gemeinschaften.",
				"f": "Solche Strukturen sind für die Masse. Ich forsche lieber darüber.",
				"g": "Nur wenn diese Einheiten spirituell sind und Spiritualität fördern.",
			},
		},
		{
			Prompt:   "23. Wie stehst du zu langfristigen Projekten und lebenslangen Verpflichtungen?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Sehr – solange es entspannte und sichere Prozesse sind.",
				"b": "Der Gedanke macht mir Angst. Ich fühle mich wie im Käfig.",
				"c": "Ich mag sie, solange sie zu Erfolg führen und stetig wachsen.",
				"d": "Ich mag sie, aber sie müssen emotionale Bindungen sein.",
				"e": "Ich mag sie nur, wenn sie eine Vision enthalten, die mich begeistert und meine Träume nicht erstickt.",
				"f": "Ich mag sie, wenn sie geistig sind und zu neuer Tiefe führen.",
				"g": "Meine einzige lebenslange Verpflichtung gilt dem spirituellen Weg.",
			},
		},
		{
			Prompt:   "24. Mit welcher Persönlichkeit identifizierst du dich am meisten?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Thomas Edison, Erfinder.",
				"b": "Jim Morrison, Rocklegende und Dichter.",
				"c": "Ernesto „Che“ Guevara, Kämpfer und Revolutionär.",
				"d": "Mutter Teresa, Missionarin der Nächstenliebe.",
				"e": "Martin Luther King Jr., Redner und Anführer.",
				"f": "Sigmund Freud, Psychologe und Theoretiker.",
				"g": "Franz von Assisi, Heiliger.",
			},
		},
		{
			Prompt:   "25. Welche historische Revolution beeindruckt dich am meisten?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Die landwirtschaftliche oder industrielle Revolution.",
				"b": "Die soziale Revolution der 60er (Flower Power).",
				"c": "Der Sieg im Zweiten Weltkrieg.",
				"d": "Gewaltfreie Friedensbewegungen wie die von Gandhi und King.",
				"e": "Die Entstehung der Demokratie im antiken Athen.",
				"f": "Die antike griechische Philosophie.",
				"g": "Das Auftreten von Lehrern wie Buddha oder Jesus.",
			},
		},
	},
}
