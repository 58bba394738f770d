package bank

// seedEN is the built-in English question bank. All questions use the
// fixed encoding: answer a maps to the root chakra, g to the crown.
var seedEN = RawBank{
	Lang: "en",
	Questions: []RawQuestion{
		{
			Prompt:   "1. Select the statement you identify with the most.",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Life is an opportunity to build something solid—to diligently and patiently establish stability, groundedness, and peace of mind.",
				"b": "The world is full of endless adventures and opportunities, and we are here to experience as many of them as possible.",
				"c": "Life is an opportunity to bring out the best in ourselves, become a success story, and emerge victorious.",
				"d": "The world is a space of emotional bonding, and we are here to realize our maximum potential as love in a human form.",
				"e": "Life presents the opportunity to discover our message, express our truest voice, and influence others’ lives.",
				"f": "The world is a space of endless learning and knowledge, and our role in it is to stretch our intelligence and understanding as much as possible.",
				"g": "Life is an opportunity for a profound inner journey of spiritual liberation and transcendence.",
			},
		},
		{
			Prompt:   "2. What would you say is the most active part of you?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "The earthly, grounded, and instinctual part of my being.",
				"b": "My feelings, impulses, and the intelligence of my body.",
				"c": "My willpower and ambition.",
				"d": "My deep emotional world.",
				"e": "My voice, expression, and communication.",
				"f": "My mind and intellect.",
				"g": "The spiritual part of my being.",
			},
		},
		{
			Prompt:   "3. Which imagery immediately makes you feel like you are in the right place?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "A beautiful house, a garden, and prosperous land.",
				"b": "Someone dancing in a trancelike, ecstatic state at a party.",
				"c": "Climbing a mountaintop, nearly reaching the peak.",
				"d": "Two people’s hands entwining and caressing each other.",
				"e": "A speaker in a big lecture hall facing a large crowd.",
				"f": "A library and a lone writer sitting in it, immersed in their own world.",
				"g": "A monk in deep meditation.",
			},
		},
		{
			Prompt:   "4. My ideal way of sharing my being with others is…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Serving the needs of my family and community with my skills and abilities.",
				"b": "Having fun, laughing, dancing, and experiencing physical and sensual joy.",
				"c": "Striving toward some shared target with effort and determination.",
				"d": "A one-on-one, personal, and intimate sharing in which we open our hearts to one another.",
				"e": "Guiding others or discussing and creating a grand vision with them.",
				"f": "Engaging in a profound philosophical discussion with a thoughtful person.",
				"g": "Meditating, praying, and simply being with others who are spiritually oriented.",
			},
		},
		{
			Prompt:   "5. The best way I could spend my time is by…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Carrying out small actions and plans that put life into order and balance.",
				"b": "Immersing myself in the outdoors, moving my body, and breathing the moment deep into my being.",
				"c": "Making sure that everything I do can lead me to my goal.",
				"d": "Helping someone and making sure they are happy.",
				"e": "Writing or recording a message that could change people’s lives.",
				"f": "Delving into a book by a great philosopher.",
				"g": "Watching a video of a spiritual or religious teacher.",
			},
		},
		{
			Prompt:   "6. Since childhood, my main connection with the world has been through…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "My search for belonging and my role in the systems of the world.",
				"b": "Playfulness and experimentation.",
				"c": "Winning in various competitions and other settings.",
				"d": "Strong feelings toward certain others.",
				"e": "Educating and leading others.",
				"f": "Distant observation and quiet inner study.",
				"g": "Indifference and unbelonging.",
			},
		},
		{
			Prompt:   "7. Others would say that I am…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Diligent, serious, responsible, cautious, and accurate.",
				"b": "Restless, intense, passionate, humorous, and always hunting for a new experience.",
				"c": "Ambitious, driven, focused, busy, and competitive.",
				"d": "Emotional, sensitive, caring, helpful, and kindhearted.",
				"e": "Inquisitive, controlling, intense, idealistic, and expressive.",
				"f": "Wise, silent, distant, deep, and aware.",
				"g": "Spiritual, introverted, unearthly, gentle, and dreamy.",
			},
		},
		{
			Prompt:   "8. At heart, I am a…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Hard worker.",
				"b": "Dancer.",
				"c": "Warrior.",
				"d": "Lover.",
				"e": "Communicator.",
				"f": "Philosopher.",
				"g": "Meditator.",
			},
		},
		{
			Prompt:   "9. I am…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Slow and careful.",
				"b": "Quick and spontaneous.",
				"c": "Persistent and determined.",
				"d": "Mild and harmonious.",
				"e": "Intense and engaging.",
				"f": "Distant and observant.",
				"g": "Dreamy and spacey.",
			},
		},
		{
			Prompt:   "10. Choose the word that you respond the most to.",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Foundation.",
				"b": "Passion.",
				"c": "Victory.",
				"d": "Love.",
				"e": "Vision.",
				"f": "Wisdom.",
				"g": "Silence.",
			},
		},
		{
			Prompt:   "11. Which building sounds the most interesting and impressive to you?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "An ancient history museum.",
				"b": "A whimsical, artistic building.",
				"c": "A skyscraper.",
				"d": "A sanctuary for the underserved.",
				"e": "A congressional hall.",
				"f": "A university.",
				"g": "An ashram or a monastery.",
			},
		},
		{
			Prompt:   "12. When I leave this world, I want to know that…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "I have benefited and contributed to my family, community, and people.",
				"b": "I have experienced life totally and let it in fully.",
				"c": "I have achieved the highest goals I set for myself.",
				"d": "I have loved strongly enough.",
				"e": "I have left behind a legacy of influence and impact.",
				"f": "I have understood some of life’s hidden mysteries.",
				"g": "I have experienced my innermost spirit.",
			},
		},
		{
			Prompt:   "13. Which of these negative attributes characterizes you the most?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Overcaution.",
				"b": "Lack of commitment.",
				"c": "Anger.",
				"d": "Neediness.",
				"e": "A controlling nature.",
				"f": "Arrogance.",
				"g": "Detachment.",
			},
		},
		{
			Prompt:   "14. How do you feel when you read the following statement? “I love dealing with details—calculations and figures, materials and accurate planning, pieces of information, and schedules.”",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Yes! I totally agree.",
				"b": "No, dealing with details makes me want to fly away. I love doing nothing!",
				"c": "Yes, but only if it leads me to some clear and powerful goal.",
				"d": "Yes, but only if it clearly helps me serve someone I love.",
				"e": "No, I would rather leap to the vision at the edge of my imagination.",
				"f": "No, small details have no intelligence or depth in them.",
				"g": "No, earthly life has no spiritual meaning.",
			},
		},
		{
			Prompt:   "15. When an overwhelming negative emotion arises in me, I…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Do anything I can to calm it down and put myself back together.",
				"b": "Become one with it, totally experience it, and quickly return to joy.",
				"c": "Take it out on my surroundings.",
				"d": "Become overwhelmed and struggle to transform it into harmony.",
				"e": "Try to control and suffocate it.",
				"f": "Investigate it as a scientist.",
				"g": "Meditate.",
			},
		},
		{
			Prompt:   "16. How much do you like change and mobility in life (as opposed to routine and permanence)?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Big changes feel unhealthy and destabilizing for me. I prefer slow and gradual change.",
				"b": "Change is my middle name. I always feel on fire and can’t stand routine!",
				"c": "I don’t like disruptions, but I know how to adjust them to my plans.",
				"d": "I am fine with changes as long as I get to keep all my loved ones with me.",
				"e": "I get confused when things change and collide with the dream inside me.",
				"f": "I prefer to create a routine that allows me to deeply explore the mental realm.",
				"g": "I don’t initiate changes, but I can accept changes when they come as God’s will.",
			},
		},
		{
			Prompt:   "17. How would you describe your type and level of energy?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Slow and persistent, like a low flame.",
				"b": "Rapid, quick, and physical, like a flare.",
				"c": "Massive and uncompromising, like a bulldozer.",
				"d": "Gentle and soft, like a breeze.",
				"e": "Intense and wakeful.",
				"f": "Mainly concentrated in my head, not so physical.",
				"g": "Airy, like levitation.",
			},
		},
		{
			Prompt:   "18. I feel most alive when…",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "I manage to grasp the inner mechanism of something.",
				"b": "I am experiencing creative expression.",
				"c": "I manage to remove obstacles and take a step forward.",
				"d": "I am in a state of intimacy and bonding.",
				"e": "I manage to influence and affect the lives of others.",
				"f": "I have new and brilliant insights.",
				"g": "I manage to enter deep states of consciousness.",
			},
		},
		{
			Prompt:   "19. How do you feel when you read the following statement? “I want to change the world!”",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "My aspirations are not that great. However, I want to know that I have benefited others and my community.",
				"b": "Far from it. I just want to be myself and express that creatively and authentically.",
				"c": "I want to conquer the world!",
				"d": "I just spread love with all my heart. Whatever happens, happens.",
				"e": "Yes—by spreading my ideas, visions, and creations, I dream of having a global impact.",
				"f": "My thoughts and ideas are far too deep to change the common people.",
				"g": "Global change is none of my concern. I am only occupied with the eternal.",
			},
		},
		{
			Prompt:   "20. Think of the color that best represents your deepest, innermost being (as opposed to your “favorite” color). Which of the following colors most closely resembles the color of your inner being?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Deep red.",
				"b": "Fizzy orange.",
				"c": "Radiant yellow.",
				"d": "Soft and light green.",
				"e": "Deep and intense blue.",
				"f": "Lush and mysterious purple.",
				"g": "Bright white; colorless.",
			},
		},
		{
			Prompt:   "21. Choose your most cherished values.",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Respect, loyalty, patience.",
				"b": "Joy, totality, beauty.",
				"c": "Courage, perseverance, dignity.",
				"d": "Compassion, friendship, harmony.",
				"e": "Authenticity, autonomy, self-expression.",
				"f": "Intelligence, clarity, depth.",
				"g": "Purity, nonattachment, freedom.",
			},
		},
		{
			Prompt:   "22. How do you feel when you read the following statement? “I love being part of a larger unit like a tradition, family, community, or nation. It feels healthy and supportive.”",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Perfectly accurate.",
				"b": "Not at all! I avoid frameworks that limit my freedom of choice and experience.",
				"c": "I appreciate structures, but it is most important for me to stand out and be myself.",
				"d": "Structures are wonderful as long as they are opportunities for love.",
				"e": "I am more interested in my dreams about better, even utopian, communities.",
				"f": "Such structures are for common people. I prefer to research this phenomenon.",
				"g": "Only if these larger units are spiritual and support spirituality.",
			},
		},
		{
			Prompt:   "23. How much do you like long-term projects and lifetime commitments?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "A lot—as long as they are relaxed and secure processes.",
				"b": "The very idea terrifies me. I feel like I’m in a cage.",
				"c": "I like them as long as they lead to some successful end and are constantly growing and expanding.",
				"d": "I like them, but they need to be essentially emotional commitments.",
				"e": "I like them, but only if they include a vision that thrills me and never stifles my dreams.",
				"f": "I like them if they are intellectual by nature and lead to new depths.",
				"g": "My only lifelong commitment is to my spiritual journey.",
			},
		},
		{
			Prompt:   "24. Choose the figure that you relate to the most.",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "Thomas Edison, inventor.",
				"b": "Jim Morrison, rock legend and poet.",
				"c": "Ernesto “Che” Guevara, warrior and revolutionary.",
				"d": "Mother Teresa, missionary of charity.",
				"e": "Martin Luther King Jr., speaker and leader.",
				"f": "Sigmund Freud, psychologist and theorist.",
				"g": "Francis of Assisi, saint.",
			},
		},
		{
			Prompt:   "25. Which historical revolution impresses you the most?",
			Encoding: EncodingFixed,
			Answers: map[string]string{
				"a": "The agricultural or industrial revolution.",
				"b": "The social revolution of the ’60s (the flower children).",
				"c": "The victory in the Second World War.",
				"d": "Nonviolent peace movements like Gandhi’s and King’s.",
				"e": "The emergence of democracy in ancient Athens.",
				"f": "Ancient Greek philosophy.",
				"g": "The emergence of teachers like the Buddha or Jesus.",
			},
		},
	},
}
