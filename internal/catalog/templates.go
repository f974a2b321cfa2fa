package catalog

import "github.com/sono-report-server/internal/domain"

// builtinTemplates holds the pediatric ultrasound examination templates.
// Declaration order is the display order; vocabulary order within each
// template is the checkbox order presented to the clinician.
var builtinTemplates = []*domain.ExamTemplate{
	{
		Code:        "Abdomen",
		DisplayName: "Abdominal Ultrasound",
		NormalFindings: `FINDINGS:
Liver: Normal size and echogenicity. No focal lesion.
Gallbladder: Normal size. No gallstone. No wall thickening.
Pancreas: Unremarkable within visualized portion.
Spleen: Normal size and echogenicity.
Kidneys: Both kidneys are normal in size. No hydronephrosis. No stone.
Urinary bladder: Unremarkable.
Mesenteric lymph nodes: Within normal limits.`,
		AbnormalVocabulary: []string{
			"Hepatomegaly",
			"Splenomegaly",
			"Mesenteric lymphadenopathy",
			"Ascites",
			"Cholecystitis",
			"Hydronephrosis",
			"Bowel wall thickening",
		},
		NormalImpression: "Normal abdominal ultrasound. No significant abnormality detected.",
		AbnormalImpressions: map[string]string{
			"Hepatomegaly":               "Hepatomegaly noted. Suggest clinical correlation and follow-up.",
			"Splenomegaly":               "Splenomegaly identified. Recommend clinical correlation for underlying cause.",
			"Mesenteric lymphadenopathy": "Mesenteric lymphadenopathy observed. Likely reactive in nature. Clinical correlation advised.",
			"Ascites":                    "Ascites present. Suggest further evaluation for underlying etiology.",
			"Cholecystitis":              "Findings suggestive of cholecystitis. Recommend clinical correlation and appropriate management.",
			"Hydronephrosis":             "Hydronephrosis detected. Further urological evaluation recommended.",
			"Bowel wall thickening":      "Bowel wall thickening noted. Differential diagnosis includes enterocolitis. Clinical correlation suggested.",
		},
	},
	{
		Code:        "Liver",
		DisplayName: "Liver Ultrasound",
		NormalFindings: `FINDINGS:
Liver: Normal size (right lobe span: age-appropriate).
Echogenicity: Homogeneous and normal echotexture.
Portal vein: Normal caliber and flow.
Intrahepatic bile ducts: No dilatation.
Focal lesions: None identified.
Liver surface: Smooth.`,
		AbnormalVocabulary: []string{
			"Hepatomegaly",
			"Fatty liver",
			"Hepatic cyst",
			"Hemangioma",
			"Intrahepatic calcification",
			"Portal vein dilatation",
			"Intrahepatic duct dilatation",
		},
		NormalImpression: "Normal hepatic ultrasound. No focal lesion or significant abnormality.",
		AbnormalImpressions: map[string]string{
			"Hepatomegaly":                 "Hepatomegaly noted. Clinical correlation and follow-up recommended.",
			"Fatty liver":                  "Diffusely increased hepatic echogenicity consistent with fatty liver. Suggest lifestyle modification and follow-up.",
			"Hepatic cyst":                 "Simple hepatic cyst identified. Likely benign. Routine follow-up recommended.",
			"Hemangioma":                   "Focal hepatic lesion suggestive of hemangioma. Follow-up imaging recommended for confirmation.",
			"Intrahepatic calcification":   "Intrahepatic calcification noted. Consider further evaluation if clinically indicated.",
			"Portal vein dilatation":       "Portal vein dilatation observed. Suggest correlation with clinical findings and laboratory data.",
			"Intrahepatic duct dilatation": "Intrahepatic biliary dilatation detected. Further evaluation for biliary obstruction recommended.",
		},
	},
	{
		Code:        "IHPS",
		DisplayName: "Pyloric Stenosis (IHPS) Ultrasound",
		NormalFindings: `FINDINGS:
Pylorus: Visualized in normal position.
Pyloric muscle thickness: < 3mm (within normal limits)
Pyloric channel length: < 15mm (within normal limits)
Pyloric channel diameter: Normal
Peristalsis: Normal peristaltic activity observed.
Gastric emptying: Unremarkable.`,
		AbnormalVocabulary: []string{
			"IHPS positive (Muscle thickness ≥ 3mm, Channel length ≥ 15mm)",
			"Borderline findings",
			"Pylorospasm",
			"Gastric distension",
			"Reflux",
		},
		NormalImpression: "Normal pyloric ultrasound. No evidence of infantile hypertrophic pyloric stenosis.",
		AbnormalImpressions: map[string]string{
			"IHPS positive (Muscle thickness ≥ 3mm, Channel length ≥ 15mm)": "Findings diagnostic of infantile hypertrophic pyloric stenosis (IHPS). Surgical consultation recommended.",
			"Borderline findings": "Borderline pyloric measurements. Suggest clinical correlation and repeat ultrasound if symptoms persist.",
			"Pylorospasm":         "Findings suggestive of pylorospasm rather than IHPS. Clinical correlation and conservative management recommended.",
			"Gastric distension":  "Gastric distension noted. Consider feeding pattern and clinical correlation.",
			"Reflux":              "Gastroesophageal reflux observed. Clinical management as appropriate.",
		},
	},
	{
		Code:        "Neck",
		DisplayName: "Neck Ultrasound (Neck Mass)",
		NormalFindings: `FINDINGS:
Subcutaneous tissue: Normal.
Cervical lymph nodes: Normal size and morphology.
Salivary glands: Both parotid and submandibular glands appear normal.
Thyroid gland: Normal size and echogenicity.
Vascular structures: Unremarkable.
No discrete mass lesion identified.`,
		AbnormalVocabulary: []string{
			"Reactive lymphadenopathy",
			"Lymphadenopathy with atypical features",
			"Thyroglossal duct cyst",
			"Branchial cleft cyst",
			"Lymphangioma/Cystic hygroma",
			"Sebaceous cyst",
			"Abscess",
			"Hemangioma",
		},
		NormalImpression: "Normal neck ultrasound. No pathologic mass or lymphadenopathy identified.",
		AbnormalImpressions: map[string]string{
			"Reactive lymphadenopathy":              "Reactive cervical lymphadenopathy. Likely benign reactive process. Follow-up as clinically indicated.",
			"Lymphadenopathy with atypical features": "Cervical lymphadenopathy with atypical sonographic features. Further evaluation recommended.",
			"Thyroglossal duct cyst":                "Midline neck cyst consistent with thyroglossal duct cyst. Surgical consultation recommended if symptomatic.",
			"Branchial cleft cyst":                  "Findings consistent with branchial cleft cyst. Surgical evaluation recommended.",
			"Lymphangioma/Cystic hygroma":           "Cystic neck mass suggestive of lymphangioma/cystic hygroma. Surgical consultation recommended.",
			"Sebaceous cyst":                        "Sebaceous cyst identified. Conservative management or excision as clinically indicated.",
			"Abscess":                               "Findings suggestive of neck abscess. Recommend immediate clinical correlation and appropriate antibiotic therapy or drainage.",
			"Hemangioma":                            "Vascular lesion consistent with hemangioma. Follow-up and clinical management as appropriate.",
		},
	},
	{
		Code:        "Torticollis",
		DisplayName: "Torticollis Ultrasound (SCM)",
		NormalFindings: `FINDINGS:
Sternocleidomastoid muscle (SCM): Bilaterally symmetric thickness and echogenicity.
No intramuscular mass identified.
No evidence of fibrosis.
Surrounding soft tissue: Normal.`,
		AbnormalVocabulary: []string{
			"SCM pseudotumor",
			"SCM hypertrophy and asymmetry",
			"SCM fibrosis",
			"SCM calcification",
			"SCM hematoma",
		},
		NormalImpression: "Normal bilateral sternocleidomastoid muscles. No evidence of pseudotumor or fibrosis.",
		AbnormalImpressions: map[string]string{
			"SCM pseudotumor":               "SCM pseudotumor identified. Typical finding in congenital muscular torticollis. Physical therapy recommended.",
			"SCM hypertrophy and asymmetry": "Asymmetric SCM thickness noted. Consistent with muscular torticollis. Physical therapy advised.",
			"SCM fibrosis":                  "SCM fibrosis detected. May require intensive physical therapy or surgical consultation if severe.",
			"SCM calcification":             "Calcification within SCM noted. Follow-up and clinical correlation recommended.",
			"SCM hematoma":                  "SCM hematoma identified. Conservative management with follow-up imaging recommended.",
		},
	},
	{
		Code:        "NeonatalSpine",
		DisplayName: "Neonatal Spine Ultrasound",
		NormalFindings: `FINDINGS:
Spinal cord: Normal position. Conus medullaris terminates at normal level (L1-L2).
Central canal: Normal.
Spinal canal: Normal configuration.
Posterior elements: Intact closure.
Soft tissue: Unremarkable.
No abnormal mass or cyst identified.`,
		AbnormalVocabulary: []string{
			"Lipoma",
			"Tethered cord syndrome",
			"Syrinx",
			"Spina bifida",
			"Dermal sinus",
			"Meningocele",
			"Neural tube defect suspected",
		},
		NormalImpression: "Normal neonatal spinal ultrasound. No evidence of spinal dysraphism or tethered cord.",
		AbnormalImpressions: map[string]string{
			"Lipoma":                       "Intraspinal lipoma identified. MRI and neurosurgical consultation recommended.",
			"Tethered cord syndrome":       "Findings suggestive of tethered cord syndrome. MRI and neurosurgical evaluation recommended.",
			"Syrinx":                       "Spinal cord syrinx detected. Further MRI evaluation and neurosurgical consultation advised.",
			"Spina bifida":                 "Findings consistent with spina bifida. Comprehensive MRI and multidisciplinary evaluation recommended.",
			"Dermal sinus":                 "Dermal sinus tract identified. MRI and neurosurgical consultation recommended to exclude intradural connection.",
			"Meningocele":                  "Meningocele detected. Immediate neurosurgical consultation recommended.",
			"Neural tube defect suspected": "Findings suspicious for neural tube defect. Urgent MRI and neurosurgical evaluation recommended.",
		},
	},
	{
		Code:        "NeonatalHead",
		DisplayName: "Neonatal Head Ultrasound",
		NormalFindings: `FINDINGS:
Ventricles: Normal size and configuration. No dilatation.
Brain parenchyma: Normal echogenicity.
Corpus callosum: Normally visualized.
Cerebellum: Unremarkable.
Extracerebral spaces: Normal.
No evidence of hemorrhage.
No periventricular leukomalacia.`,
		AbnormalVocabulary: []string{
			"Ventriculomegaly",
			"Intraventricular hemorrhage (IVH) - Grade I",
			"Intraventricular hemorrhage (IVH) - Grade II",
			"Intraventricular hemorrhage (IVH) - Grade III",
			"Intraventricular hemorrhage (IVH) - Grade IV",
			"Periventricular leukomalacia (PVL)",
			"Choroid plexus cyst",
			"Subependymal hemorrhage",
			"Subdural hemorrhage",
			"Agenesis of corpus callosum",
		},
		NormalImpression: "Normal neonatal cranial ultrasound. No hemorrhage or parenchymal abnormality detected.",
		AbnormalImpressions: map[string]string{
			"Ventriculomegaly":                              "Ventriculomegaly noted. Serial ultrasound follow-up recommended to monitor progression.",
			"Intraventricular hemorrhage (IVH) - Grade I":   "Grade I intraventricular hemorrhage (germinal matrix hemorrhage). Follow-up ultrasound recommended.",
			"Intraventricular hemorrhage (IVH) - Grade II":  "Grade II intraventricular hemorrhage without ventricular dilatation. Serial follow-up imaging advised.",
			"Intraventricular hemorrhage (IVH) - Grade III": "Grade III intraventricular hemorrhage with ventricular dilatation. Close monitoring and neurosurgical consultation recommended.",
			"Intraventricular hemorrhage (IVH) - Grade IV":  "Grade IV intraventricular hemorrhage with parenchymal involvement. Urgent neurosurgical consultation recommended.",
			"Periventricular leukomalacia (PVL)":            "Findings consistent with periventricular leukomalacia. Serial ultrasound and developmental follow-up recommended.",
			"Choroid plexus cyst":                           "Choroid plexus cyst identified. Usually benign finding. Follow-up imaging recommended to confirm resolution.",
			"Subependymal hemorrhage":                       "Subependymal hemorrhage detected. Follow-up ultrasound recommended to monitor evolution.",
			"Subdural hemorrhage":                           "Subdural hemorrhage identified. Neurosurgical consultation recommended. Consider further evaluation for etiology.",
			"Agenesis of corpus callosum":                   "Findings suspicious for agenesis of corpus callosum. MRI confirmation and genetic consultation recommended.",
		},
	},
	{
		Code:        "PediatricEcho",
		DisplayName: "Pediatric Echocardiography",
		NormalFindings: `FINDINGS:
Heart size: Normal.
Ventricular function: Normal systolic function.
Atria: Normal size.
Ventricles: Normal size and wall thickness.
Valves: Mitral, tricuspid, aortic, and pulmonary valves are normal.
Ventricular septum: Intact. No defect.
Atrial septum: Intact. (PFO may be normal variant depending on age)
Great vessels: Normal arrangement and caliber.
No pericardial effusion.`,
		AbnormalVocabulary: []string{
			"Ventricular septal defect (VSD)",
			"Atrial septal defect (ASD)",
			"Patent ductus arteriosus (PDA)",
			"Pulmonary stenosis (PS)",
			"Aortic stenosis (AS)",
			"Mitral regurgitation (MR)",
			"Tricuspid regurgitation (TR)",
			"Ventricular hypertrophy",
			"Pericardial effusion",
			"Cardiomyopathy suspected",
		},
		NormalImpression: "Normal pediatric echocardiogram. No structural heart disease or functional abnormality detected.",
		AbnormalImpressions: map[string]string{
			"Ventricular septal defect (VSD)": "Ventricular septal defect identified. Cardiology follow-up recommended for size assessment and hemodynamic significance.",
			"Atrial septal defect (ASD)":      "Atrial septal defect detected. Pediatric cardiology consultation recommended.",
			"Patent ductus arteriosus (PDA)":  "Patent ductus arteriosus present. Clinical correlation and cardiology evaluation recommended.",
			"Pulmonary stenosis (PS)":         "Pulmonary valve stenosis noted. Degree of stenosis assessment and cardiology follow-up recommended.",
			"Aortic stenosis (AS)":            "Aortic valve stenosis detected. Severity assessment and cardiology consultation recommended.",
			"Mitral regurgitation (MR)":       "Mitral regurgitation identified. Clinical correlation and cardiology follow-up advised.",
			"Tricuspid regurgitation (TR)":    "Tricuspid regurgitation noted. Assess for underlying etiology. Cardiology follow-up recommended.",
			"Ventricular hypertrophy":         "Ventricular hypertrophy detected. Further evaluation for underlying cause recommended.",
			"Pericardial effusion":            "Pericardial effusion present. Clinical correlation and monitoring recommended. Consider etiology evaluation.",
			"Cardiomyopathy suspected":        "Findings suggestive of cardiomyopathy. Comprehensive cardiac evaluation and cardiology consultation strongly recommended.",
		},
	},
	{
		Code:        "Bowel",
		DisplayName: "Pediatric Bowel Ultrasound",
		NormalFindings: `FINDINGS:
Small bowel: Normal wall thickness (< 3mm). Normal peristalsis.
Large bowel: Normal wall thickness. Normal gas pattern.
Mesentery: Unremarkable.
Ascites: None.
Lymph nodes: Within normal limits.
Mesenteric blood flow: Normal.`,
		AbnormalVocabulary: []string{
			"Bowel wall thickening",
			"Enteritis/Colitis",
			"Intussusception suspected",
			"Mesenteric lymphadenitis",
			"Inflammatory bowel disease (IBD) suspected",
			"Bowel obstruction",
			"Ascites",
			"Increased mesenteric vascularity",
		},
		NormalImpression: "Normal bowel ultrasound. No evidence of enterocolitis or obstruction.",
		AbnormalImpressions: map[string]string{
			"Bowel wall thickening":     "Bowel wall thickening identified. Differential diagnosis includes enterocolitis. Clinical correlation recommended.",
			"Enteritis/Colitis":         "Findings consistent with enterocolitis. Clinical correlation and appropriate management advised.",
			"Intussusception suspected": "Suspicious findings for intussusception. Immediate clinical correlation and surgical consultation recommended.",
			"Mesenteric lymphadenitis":  "Mesenteric lymphadenitis noted. Likely reactive process. Clinical follow-up as indicated.",
			"Inflammatory bowel disease (IBD) suspected": "Findings raise suspicion for inflammatory bowel disease. Further evaluation including colonoscopy recommended.",
			"Bowel obstruction":                "Findings suggestive of bowel obstruction. Immediate clinical correlation and surgical consultation recommended.",
			"Ascites":                          "Ascites present. Further evaluation for underlying etiology recommended.",
			"Increased mesenteric vascularity": "Increased mesenteric blood flow noted. Suggests inflammatory process. Clinical correlation advised.",
		},
	},
	{
		Code:        "Appendix",
		DisplayName: "Appendix Ultrasound",
		NormalFindings: `FINDINGS:
Appendix: Visualized and normal or not visualized (normal finding).
Appendiceal diameter: < 6mm (when visualized)
Appendiceal wall: Normal thickness.
Tenderness: No sonographic tenderness.
Peri-appendiceal fat: Normal.
Ascites: None.
Right lower quadrant lymph nodes: Within normal limits.`,
		AbnormalVocabulary: []string{
			"Acute appendicitis - definite",
			"Appendicitis suspected",
			"Perforated appendicitis suspected",
			"Periappendiceal abscess",
			"Appendicolith",
			"Right lower quadrant lymphadenitis",
			"Mesenteric lymphadenitis",
		},
		NormalImpression: "Normal appendix ultrasound or non-visualized appendix (normal finding). No sonographic evidence of appendicitis.",
		AbnormalImpressions: map[string]string{
			"Acute appendicitis - definite":      "Findings diagnostic of acute appendicitis. Immediate surgical consultation recommended.",
			"Appendicitis suspected":             "Findings suspicious for appendicitis. Clinical correlation recommended. Consider CT for confirmation if clinically indicated.",
			"Perforated appendicitis suspected":  "Findings suggestive of perforated appendicitis. Urgent surgical consultation recommended.",
			"Periappendiceal abscess":            "Periappendiceal abscess identified. Surgical consultation and possible drainage recommended.",
			"Appendicolith":                      "Appendicolith noted. Increased risk for appendicitis. Clinical correlation and close monitoring recommended.",
			"Right lower quadrant lymphadenitis": "Right lower quadrant lymphadenopathy noted. May be reactive. Clinical correlation suggested.",
			"Mesenteric lymphadenitis":           "Mesenteric lymphadenitis identified. Likely reactive process. Conservative management with clinical follow-up.",
		},
	},
	{
		Code:        "KidneyBladder",
		DisplayName: "Kidney & Bladder Ultrasound",
		NormalFindings: `FINDINGS:
Right kidney: Normal size (age-appropriate length). Normal cortical echogenicity. No hydronephrosis.
Left kidney: Normal size (age-appropriate length). Normal cortical echogenicity. No hydronephrosis.
Pelvicalyceal system: No dilatation.
Ureters: No dilatation.
Urinary bladder: Normal size and wall thickness. No internal echoes.
Renal stones: None identified.
No evidence of vesicoureteral reflux.`,
		AbnormalVocabulary: []string{
			"Hydronephrosis - Grade I",
			"Hydronephrosis - Grade II",
			"Hydronephrosis - Grade III",
			"Hydronephrosis - Grade IV",
			"Renal stone",
			"Renal cyst",
			"Duplicated collecting system",
			"Bladder wall thickening",
			"Bladder debris",
			"Pelvicalyceal dilatation",
			"Hydroureter",
		},
		NormalImpression: "Normal renal and bladder ultrasound. No hydronephrosis or stone identified.",
		AbnormalImpressions: map[string]string{
			"Hydronephrosis - Grade I":     "Mild (Grade I) hydronephrosis detected. Follow-up ultrasound recommended. Consider voiding cystourethrogram if persistent.",
			"Hydronephrosis - Grade II":    "Moderate (Grade II) hydronephrosis identified. Urological evaluation recommended.",
			"Hydronephrosis - Grade III":   "Severe (Grade III) hydronephrosis noted. Prompt urological consultation and further evaluation recommended.",
			"Hydronephrosis - Grade IV":    "Very severe (Grade IV) hydronephrosis detected. Urgent urological consultation recommended.",
			"Renal stone":                  "Renal calculus identified. Urological evaluation and metabolic workup recommended.",
			"Renal cyst":                   "Simple renal cyst noted. Likely benign. Follow-up imaging as clinically indicated.",
			"Duplicated collecting system": "Duplicated pelvicalyceal system identified. Follow-up to assess for associated anomalies recommended.",
			"Bladder wall thickening":      "Bladder wall thickening noted. Consider urodynamic evaluation if clinically indicated.",
			"Bladder debris":               "Echogenic material within bladder. Clinical correlation recommended. Consider urinalysis.",
			"Pelvicalyceal dilatation":     "Pelvicalyceal dilatation detected. Further evaluation with follow-up imaging and possible urological consultation recommended.",
			"Hydroureter":                  "Ureteral dilatation identified. Urological evaluation recommended to determine underlying cause.",
		},
	},
	{
		Code:        "Hip",
		DisplayName: "Hip Ultrasound (DDH)",
		NormalFindings: `FINDINGS:
Right hip: Normal anatomical structure. Graf classification Type I (α angle > 60°, β angle < 55°).
Femoral head: Normal position and morphology. No dislocation.
Acetabulum: Normal configuration and angle.
Left hip: Normal anatomical structure. Graf classification Type I (α angle > 60°, β angle < 55°).
Femoral head: Normal position and morphology. No dislocation.
Acetabulum: Normal configuration and angle.
Joint effusion: None.`,
		AbnormalVocabulary: []string{
			"Developmental dysplasia of the hip (DDH) - Graf Type IIa",
			"Developmental dysplasia of the hip (DDH) - Graf Type IIb",
			"Developmental dysplasia of the hip (DDH) - Graf Type IIc",
			"Developmental dysplasia of the hip (DDH) - Graf Type III",
			"Developmental dysplasia of the hip (DDH) - Graf Type IV",
			"Hip subluxation",
			"Hip dislocation",
			"Joint effusion",
			"Septic arthritis suspected",
		},
		NormalImpression: "Normal bilateral hip ultrasound. No evidence of developmental dysplasia or dislocation.",
		AbnormalImpressions: map[string]string{
			"Developmental dysplasia of the hip (DDH) - Graf Type IIa": "Graf Type IIa hip (physiologic immaturity). Follow-up ultrasound in 4-6 weeks recommended.",
			"Developmental dysplasia of the hip (DDH) - Graf Type IIb": "Graf Type IIb hip (delayed ossification). Consider Pavlik harness or close monitoring. Orthopedic consultation recommended.",
			"Developmental dysplasia of the hip (DDH) - Graf Type IIc": "Graf Type IIc hip (critical zone). Pavlik harness treatment recommended. Orthopedic consultation advised.",
			"Developmental dysplasia of the hip (DDH) - Graf Type III": "Graf Type III hip (decentered hip). Immediate orthopedic consultation and treatment recommended.",
			"Developmental dysplasia of the hip (DDH) - Graf Type IV":  "Graf Type IV hip (dislocated hip). Urgent orthopedic consultation and treatment required.",
			"Hip subluxation":            "Hip subluxation identified. Orthopedic consultation and treatment planning recommended.",
			"Hip dislocation":            "Hip dislocation detected. Immediate orthopedic consultation and reduction required.",
			"Joint effusion":             "Hip joint effusion present. Clinical correlation recommended. Rule out septic arthritis if clinically indicated.",
			"Septic arthritis suspected": "Findings concerning for septic arthritis. Immediate clinical correlation, joint aspiration, and antibiotic therapy recommended.",
		},
	},
	{
		Code:        "Hydrocele",
		DisplayName: "Scrotal Ultrasound (Hydrocele)",
		NormalFindings: `FINDINGS:
Right testis: Normal size and echogenicity. Normal vascularity.
Right epididymis: Unremarkable.
Right hemiscrotum: No hydrocele.
Left testis: Normal size and echogenicity. Normal vascularity.
Left epididymis: Unremarkable.
Left hemiscrotum: No hydrocele.
Inguinal region: No hernia identified.`,
		AbnormalVocabulary: []string{
			"Hydrocele - right",
			"Hydrocele - left",
			"Hydrocele - bilateral",
			"Communicating hydrocele",
			"Inguinal hernia",
			"Undescended testis suspected",
			"Epididymitis",
			"Testicular torsion suspected",
			"Testicular mass",
		},
		NormalImpression: "Normal scrotal ultrasound. No hydrocele or testicular abnormality identified.",
		AbnormalImpressions: map[string]string{
			"Hydrocele - right":            "Right-sided hydrocele identified. Observation recommended. Surgical consultation if persistent or symptomatic.",
			"Hydrocele - left":             "Left-sided hydrocele identified. Observation recommended. Surgical consultation if persistent or symptomatic.",
			"Hydrocele - bilateral":        "Bilateral hydroceles present. Observation recommended. Surgical consultation if persistent or symptomatic.",
			"Communicating hydrocele":      "Communicating hydrocele suspected. Surgical consultation recommended due to associated inguinal hernia risk.",
			"Inguinal hernia":              "Inguinal hernia identified. Surgical consultation recommended.",
			"Undescended testis suspected": "Testis not visualized in hemiscrotum. Undescended testis suspected. Further evaluation and surgical consultation recommended.",
			"Epididymitis":                 "Findings consistent with epididymitis. Antibiotic therapy and clinical follow-up recommended.",
			"Testicular torsion suspected": "Absent or decreased testicular blood flow. Findings highly concerning for testicular torsion. URGENT surgical consultation required.",
			"Testicular mass":              "Testicular mass identified. Urgent urological consultation and further evaluation with tumor markers recommended.",
		},
	},
	{
		Code:        "PelvicFemale",
		DisplayName: "Pediatric Pelvic Ultrasound (Female, Trans-abdominal)",
		NormalFindings: `FINDINGS:
Uterus: Age-appropriate size. Normal echogenicity.
Ovaries: Both ovaries visualized normally. Age-appropriate size.
Right ovary: Normal size and echogenicity. Physiologic follicles noted (age-appropriate).
Left ovary: Normal size and echogenicity. Physiologic follicles noted (age-appropriate).
Pouch of Douglas: No free fluid.
Urinary bladder: Unremarkable.
No mass lesion identified.`,
		AbnormalVocabulary: []string{
			"Ovarian cyst - right",
			"Ovarian cyst - left",
			"Ovarian cyst - bilateral",
			"Ovarian torsion suspected",
			"Ovarian mass",
			"Uterine anomaly suspected",
			"Pelvic free fluid",
			"Hydrometrocolpos",
			"Intra-abdominal mass",
		},
		NormalImpression: "Normal pelvic ultrasound for age. No ovarian or uterine abnormality detected.",
		AbnormalImpressions: map[string]string{
			"Ovarian cyst - right":      "Right ovarian cyst identified. Follow-up ultrasound recommended to assess for resolution. Gynecology consultation if persistent or enlarging.",
			"Ovarian cyst - left":       "Left ovarian cyst identified. Follow-up ultrasound recommended to assess for resolution. Gynecology consultation if persistent or enlarging.",
			"Ovarian cyst - bilateral":  "Bilateral ovarian cysts noted. Follow-up ultrasound and hormonal evaluation may be indicated.",
			"Ovarian torsion suspected": "Findings concerning for ovarian torsion including abnormal ovarian blood flow. URGENT gynecological consultation required.",
			"Ovarian mass":              "Ovarian mass detected. Further evaluation with MRI and gynecology/oncology consultation recommended.",
			"Uterine anomaly suspected": "Findings suggestive of uterine anomaly. MRI for detailed evaluation recommended.",
			"Pelvic free fluid":         "Free fluid in pelvis. Clinical correlation recommended. Consider differential diagnosis based on clinical context.",
			"Hydrometrocolpos":          "Findings consistent with hydrometrocolpos. Gynecology consultation and further evaluation recommended.",
			"Intra-abdominal mass":      "Pelvic/abdominal mass identified. Further imaging and multidisciplinary consultation recommended.",
		},
	},
	{
		Code:        "Thyroid",
		DisplayName: "Thyroid Ultrasound",
		NormalFindings: `FINDINGS:
Thyroid size: Age-appropriate normal size.
Right lobe: Normal size and homogeneous echogenicity.
Left lobe: Normal size and homogeneous echogenicity.
Isthmus: Unremarkable.
Thyroid nodules: None identified.
Cervical lymph nodes: Within normal limits.
Vascularity: Normal.`,
		AbnormalVocabulary: []string{
			"Goiter",
			"Thyroid nodule",
			"Thyroiditis",
			"Thyroid cyst",
			"Cervical lymphadenopathy",
			"Thyroid calcification",
			"Increased thyroid vascularity",
			"Ectopic thyroid tissue",
		},
		NormalImpression: "Normal thyroid ultrasound. No nodule or abnormal lymphadenopathy identified.",
		AbnormalImpressions: map[string]string{
			"Goiter":                        "Diffuse thyroid enlargement (goiter) noted. Thyroid function tests and clinical correlation recommended.",
			"Thyroid nodule":                "Thyroid nodule identified. Further characterization with ultrasound features assessment recommended. Consider FNA if indicated by ACR TI-RADS criteria.",
			"Thyroiditis":                   "Findings consistent with thyroiditis. Thyroid function tests and clinical correlation recommended.",
			"Thyroid cyst":                  "Simple thyroid cyst noted. Routine follow-up recommended unless symptomatic.",
			"Cervical lymphadenopathy":      "Cervical lymphadenopathy identified. Clinical correlation and follow-up recommended. Consider further evaluation if persistent or atypical features present.",
			"Thyroid calcification":         "Thyroid calcification detected. Further evaluation with ultrasound characterization recommended to assess for malignancy risk.",
			"Increased thyroid vascularity": "Increased thyroid vascularity noted. Suggestive of thyroiditis or hyperfunction. Thyroid function tests recommended.",
			"Ectopic thyroid tissue":        "Ectopic thyroid tissue identified. Thyroid function assessment and surgical consultation if symptomatic.",
		},
	},
}
